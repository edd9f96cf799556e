package lottery

import (
	"github.com/KirkDiggler/prizedraw/internal/common/clock"
	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/random"
	tenantRepo "github.com/KirkDiggler/prizedraw/internal/repositories/tenant"
	"go.uber.org/zap"
)

// Config holds configuration for the lottery service
type Config struct {
	// Repository persists tenant state
	Repository tenantRepo.Repository

	// Randomizer drives prize and winner selection
	Randomizer random.Randomizer

	// Clock stamps win records
	Clock clock.Clock

	// UUIDGenerator creates win record and prize ids
	UUIDGenerator uuid.Generator

	// Logger is optional; defaults to a no-op logger
	Logger *zap.Logger
}

// UpsertPrizeInput contains parameters for creating or updating a prize
type UpsertPrizeInput struct {
	TenantID string

	// ID of the prize to update. Empty creates a prize with a generated id.
	ID string

	// Name is required
	Name string

	// Count is the total number of units and must be positive
	Count int

	// Level and LevelLabel fall back to the participation tier when empty
	Level      string
	LevelLabel string
}

// UpsertPrizeOutput contains the saved prize
type UpsertPrizeOutput struct {
	Prize models.Prize

	// Created is true when the prize did not exist before
	Created bool
}

type DeletePrizeInput struct {
	TenantID string
	PrizeID  string
}

type DeletePrizeOutput struct {
	// Deleted is false when no prize had the id
	Deleted bool
}

type ClearPrizesInput struct {
	TenantID string
}

type ClearPrizesOutput struct {
	// Removed is the number of prize definitions deleted
	Removed int
}

type ListPrizesInput struct {
	TenantID string
}

type ListPrizesOutput struct {
	Prizes []models.Prize
}

// ReplaceRosterInput contains the new list of eligible people
type ReplaceRosterInput struct {
	TenantID string

	// People must be non-empty and every entry needs an id and a name
	People []models.Person
}

type ReplaceRosterOutput struct {
	Count int
}

type GetRosterInput struct {
	TenantID string
}

type GetRosterOutput struct {
	People []models.Person
}

// DrawInput contains parameters for a draw
type DrawInput struct {
	TenantID string

	// PrizeID targets a specific prize. Empty picks a prize with stock at random.
	PrizeID string

	// Count is the number of winners requested; 0 means 1
	Count int
}

// DrawOutput contains the result of a draw
type DrawOutput struct {
	// Prize is the drawn prize after its stock was decremented
	Prize models.Prize

	// Winners are the new records in selection order
	Winners []models.WinRecord
}

type InvalidateInput struct {
	TenantID string
	RecordID string
}

// InvalidateOutput contains the removed record
type InvalidateOutput struct {
	Record models.WinRecord

	// Prize is the restocked prize, nil when it no longer exists
	Prize *models.Prize
}

type ResetWinnersInput struct {
	TenantID string
}

type ResetWinnersOutput struct {
	// Cleared is the number of win records removed
	Cleared int
}

type ListWinnersInput struct {
	TenantID string
}

type ListWinnersOutput struct {
	Winners []models.WinRecord
}
