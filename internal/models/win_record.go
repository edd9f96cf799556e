package models

import "time"

// WinRecord is an immutable record of one person winning one unit of a prize.
// Prize and person fields are copied at draw time so later edits to either
// do not rewrite history.
type WinRecord struct {
	ID              string    `json:"id"`
	PrizeID         string    `json:"prizeId"`
	PrizeName       string    `json:"prizeName"`
	PrizeLevel      string    `json:"prizeLevel"`
	PrizeLevelLabel string    `json:"prizeLevelLabel"`
	WinnerID        string    `json:"winnerId"`
	WinnerName      string    `json:"winnerName"`
	WinnerSeat      string    `json:"winnerSeat"`
	WinTime         time.Time `json:"winTime"`
}
