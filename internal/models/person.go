package models

// Person is a single roster entry eligible to win
type Person struct {
	// ID is the employee or badge number, unique within a tenant's roster
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Seat is where the person sits, used to find winners in the room
	Seat string `json:"seat"`
}
