package models

const (
	// DefaultPrizeLevel is used when a prize is saved without a level
	DefaultPrizeLevel = "participation"

	// DefaultPrizeLevelLabel is used when a prize is saved without a level label
	DefaultPrizeLevelLabel = "Participation Prize"
)

// Prize is a configurable prize with a stock counter
type Prize struct {
	// ID is the unique identifier for the prize within a tenant
	ID string `json:"id"`

	// Name is the display name of the prize
	Name string `json:"name"`

	// Count is the total number of units configured
	Count int `json:"count"`

	// Remaining is the number of units not yet won, 0 <= Remaining <= Count
	Remaining int `json:"remaining"`

	// Level is the machine-friendly tier (e.g. "first", "participation")
	Level string `json:"level"`

	// LevelLabel is the human-friendly tier label
	LevelLabel string `json:"levelLabel"`
}

// Awarded returns how many units of the prize are currently held by winners
func (p Prize) Awarded() int {
	return p.Count - p.Remaining
}
