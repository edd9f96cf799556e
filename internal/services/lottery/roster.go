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

var rosterFields = []tenantRepo.Field{tenantRepo.FieldRoster}

// ReplaceRoster swaps the roster wholesale. Current winners and exclusions are
// kept, so people who already won stay out of the pool after a re-import.
func (s *service) ReplaceRoster(ctx context.Context, input *ReplaceRosterInput) (*ReplaceRosterOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	if len(input.People) == 0 {
		return nil, fmt.Errorf("%w: roster is empty", ErrInvalidInput)
	}

	for i, p := range input.People {
		if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: roster entry %d needs an id and a name", ErrInvalidInput, i)
		}
	}

	people := slices.Clone(input.People)
	err := s.mutate(ctx, opReplaceRoster, input.TenantID, rosterFields, func(state *models.TenantState) (bool, error) {
		state.Roster = people
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("roster replaced",
		zap.String("tenant_id", input.TenantID),
		zap.Int("people", len(people)))

	return &ReplaceRosterOutput{
		Count: len(people),
	}, nil
}

// GetRoster returns a copy of the roster
func (s *service) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	output := &GetRosterOutput{}
	err := s.read(ctx, input.TenantID, func(state *models.TenantState) {
		output.People = slices.Clone(state.Roster)
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
