package lottery

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"go.uber.org/zap"
)

// Invalidate removes a win record, returns its winner to the candidate pool
// and gives one unit back to the prize if the prize still exists. Stock is
// capped at the prize's count, which matters when the count was lowered after
// the draw.
func (s *service) Invalidate(ctx context.Context, input *InvalidateInput) (*InvalidateOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output := &InvalidateOutput{}
	err := s.mutate(ctx, opInvalidate, input.TenantID, drawFields, func(state *models.TenantState) (bool, error) {
		idx := state.WinnerIndex(input.RecordID)
		if idx < 0 {
			return false, fmt.Errorf("%w: %s", ErrRecordNotFound, input.RecordID)
		}

		record := state.Winners[idx]
		state.Winners = slices.Delete(state.Winners, idx, idx+1)

		stillWinning := slices.ContainsFunc(state.Winners, func(w models.WinRecord) bool {
			return w.WinnerID == record.WinnerID
		})
		if !stillWinning {
			delete(state.Excluded, record.WinnerID)
		}

		if p := state.PrizeIndex(record.PrizeID); p >= 0 {
			prize := &state.Prizes[p]
			prize.Remaining = min(prize.Remaining+1, prize.Count)
			restocked := *prize
			output.Prize = &restocked
		}

		output.Record = record
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("win record invalidated",
		zap.String("tenant_id", input.TenantID),
		zap.String("record_id", output.Record.ID),
		zap.String("winner_id", output.Record.WinnerID),
		zap.Bool("restocked", output.Prize != nil))

	return output, nil
}

// ResetWinners drops every win record and exclusion and refills every prize.
// Calling it twice is the same as calling it once.
func (s *service) ResetWinners(ctx context.Context, input *ResetWinnersInput) (*ResetWinnersOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output := &ResetWinnersOutput{}
	err := s.mutate(ctx, opResetWinners, input.TenantID, drawFields, func(state *models.TenantState) (bool, error) {
		output.Cleared = len(state.Winners)
		state.Winners = []models.WinRecord{}
		state.Excluded = make(map[string]struct{})
		for i := range state.Prizes {
			state.Prizes[i].Remaining = state.Prizes[i].Count
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("winners reset",
		zap.String("tenant_id", input.TenantID),
		zap.Int("cleared", output.Cleared))

	return output, nil
}

// ListWinners returns a copy of the win records in chronological order
func (s *service) ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output := &ListWinnersOutput{}
	err := s.read(ctx, input.TenantID, func(state *models.TenantState) {
		output.Winners = slices.Clone(state.Winners)
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
