package lottery

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/prizedraw/internal/services/lottery Service

import "context"

// Service defines the interface for prize drawing operations. Every operation
// is scoped to a tenant and serialized against other operations on that tenant.
type Service interface {
	// UpsertPrize creates a prize or updates one in place, keeping its stock proportional
	UpsertPrize(ctx context.Context, input *UpsertPrizeInput) (*UpsertPrizeOutput, error)

	// DeletePrize removes a prize definition; existing win records are kept
	DeletePrize(ctx context.Context, input *DeletePrizeInput) (*DeletePrizeOutput, error)

	// ClearPrizes removes every prize definition
	ClearPrizes(ctx context.Context, input *ClearPrizesInput) (*ClearPrizesOutput, error)

	// ListPrizes returns the prizes in insertion order
	ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error)

	// ReplaceRoster swaps the list of eligible people wholesale
	ReplaceRoster(ctx context.Context, input *ReplaceRosterInput) (*ReplaceRosterOutput, error)

	// GetRoster returns the list of eligible people
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)

	// Draw selects winners for a prize without replacement
	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)

	// Invalidate reverses a single win record and restores its stock
	Invalidate(ctx context.Context, input *InvalidateInput) (*InvalidateOutput, error)

	// ResetWinners clears every win and restores every prize to full stock
	ResetWinners(ctx context.Context, input *ResetWinnersInput) (*ResetWinnersOutput, error)

	// ListWinners returns the win records in chronological order
	ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error)
}
