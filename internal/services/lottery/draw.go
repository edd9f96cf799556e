package lottery

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/random"
	tenantRepo "github.com/KirkDiggler/prizedraw/internal/repositories/tenant"
	"go.uber.org/zap"
)

var drawFields = []tenantRepo.Field{
	tenantRepo.FieldPrizes,
	tenantRepo.FieldWinners,
	tenantRepo.FieldExcluded,
}

// Draw selects up to Count winners for a prize. The number of winners is the
// smallest of the request, the prize's remaining stock and the candidate pool.
func (s *service) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	requested := input.Count
	if requested == 0 {
		requested = 1
	}

	var output *DrawOutput
	err := s.mutate(ctx, opDraw, input.TenantID, drawFields, func(state *models.TenantState) (bool, error) {
		if len(state.Roster) == 0 {
			return false, ErrEmptyRoster
		}

		candidates := state.Candidates()
		if len(candidates) == 0 {
			return false, ErrNoCandidates
		}

		idx, err := s.selectPrize(state, input.PrizeID)
		if err != nil {
			return false, err
		}
		prize := &state.Prizes[idx]

		n := min(requested, prize.Remaining, len(candidates))
		if n <= 0 {
			return false, ErrInsufficientCapacity
		}

		now := s.clock.Now()
		picked := random.Sample(s.randomizer, candidates, n)
		records := make([]models.WinRecord, 0, len(picked))
		for _, person := range picked {
			record := models.WinRecord{
				ID:              s.uuidGenerator.NewID(),
				PrizeID:         prize.ID,
				PrizeName:       prize.Name,
				PrizeLevel:      prize.Level,
				PrizeLevelLabel: prize.LevelLabel,
				WinnerID:        person.ID,
				WinnerName:      person.Name,
				WinnerSeat:      person.Seat,
				WinTime:         now,
			}
			state.Excluded[person.ID] = struct{}{}
			state.Winners = append(state.Winners, record)
			records = append(records, record)
		}
		prize.Remaining -= len(records)

		output = &DrawOutput{
			Prize:   *prize,
			Winners: records,
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWinners(len(output.Winners))
	s.logger.Info("draw committed",
		zap.String("tenant_id", input.TenantID),
		zap.String("prize_id", output.Prize.ID),
		zap.Int("requested", requested),
		zap.Int("winners", len(output.Winners)),
		zap.Int("remaining", output.Prize.Remaining))

	return output, nil
}

// selectPrize resolves the draw target. A named prize must exist and have
// stock; otherwise one prize with stock is picked uniformly, ignoring how much
// stock each has.
func (s *service) selectPrize(state *models.TenantState, prizeID string) (int, error) {
	if prizeID != "" {
		idx := state.PrizeIndex(prizeID)
		if idx < 0 {
			return -1, fmt.Errorf("%w: %s", ErrPrizeNotFound, prizeID)
		}
		if state.Prizes[idx].Remaining <= 0 {
			return -1, fmt.Errorf("%w: %s", ErrOutOfStock, prizeID)
		}
		return idx, nil
	}

	available := make([]int, 0, len(state.Prizes))
	for i, p := range state.Prizes {
		if p.Remaining > 0 {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return -1, ErrAllOutOfStock
	}

	return available[s.randomizer.Intn(len(available))], nil
}
