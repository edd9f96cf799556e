package lottery

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/prizedraw/internal/models"
	tenantRepo "github.com/KirkDiggler/prizedraw/internal/repositories/tenant"
	"go.uber.org/zap"
)

var prizeFields = []tenantRepo.Field{tenantRepo.FieldPrizes}

// UpsertPrize creates a prize or updates one in place. An update shifts the
// remaining stock by the change in count and never lets it go negative.
func (s *service) UpsertPrize(ctx context.Context, input *UpsertPrizeInput) (*UpsertPrizeOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: prize name is required", ErrInvalidInput)
	}

	if input.Count <= 0 {
		return nil, fmt.Errorf("%w: prize count must be a positive integer, got %d", ErrInvalidInput, input.Count)
	}

	level := input.Level
	if level == "" {
		level = models.DefaultPrizeLevel
	}
	levelLabel := input.LevelLabel
	if levelLabel == "" {
		levelLabel = models.DefaultPrizeLevelLabel
	}

	output := &UpsertPrizeOutput{}
	err := s.mutate(ctx, opUpsertPrize, input.TenantID, prizeFields, func(state *models.TenantState) (bool, error) {
		prize := models.Prize{
			ID:         input.ID,
			Name:       name,
			Count:      input.Count,
			Remaining:  input.Count,
			Level:      level,
			LevelLabel: levelLabel,
		}
		if prize.ID == "" {
			prize.ID = s.uuidGenerator.NewID()
		}

		if idx := state.PrizeIndex(prize.ID); idx >= 0 {
			existing := state.Prizes[idx]
			prize.Remaining = max(existing.Remaining+(prize.Count-existing.Count), 0)
			state.Prizes[idx] = prize
		} else {
			state.Prizes = append(state.Prizes, prize)
			output.Created = true
		}

		output.Prize = prize
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("prize saved",
		zap.String("tenant_id", input.TenantID),
		zap.String("prize_id", output.Prize.ID),
		zap.Bool("created", output.Created),
		zap.Int("count", output.Prize.Count),
		zap.Int("remaining", output.Prize.Remaining))

	return output, nil
}

// DeletePrize removes a prize if it exists. Win records pointing at it are kept.
func (s *service) DeletePrize(ctx context.Context, input *DeletePrizeInput) (*DeletePrizeOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output := &DeletePrizeOutput{}
	err := s.mutate(ctx, opDeletePrize, input.TenantID, prizeFields, func(state *models.TenantState) (bool, error) {
		idx := state.PrizeIndex(input.PrizeID)
		if idx < 0 {
			return false, nil
		}

		state.Prizes = slices.Delete(state.Prizes, idx, idx+1)
		output.Deleted = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ClearPrizes removes every prize definition
func (s *service) ClearPrizes(ctx context.Context, input *ClearPrizesInput) (*ClearPrizesOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output := &ClearPrizesOutput{}
	err := s.mutate(ctx, opClearPrizes, input.TenantID, prizeFields, func(state *models.TenantState) (bool, error) {
		output.Removed = len(state.Prizes)
		state.Prizes = []models.Prize{}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("prizes cleared",
		zap.String("tenant_id", input.TenantID),
		zap.Int("removed", output.Removed))

	return output, nil
}

// ListPrizes returns a copy of the prizes in insertion order
func (s *service) ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output := &ListPrizesOutput{}
	err := s.read(ctx, input.TenantID, func(state *models.TenantState) {
		output.Prizes = slices.Clone(state.Prizes)
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
