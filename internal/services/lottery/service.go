package lottery

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/prizedraw/internal/common/clock"
	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/random"
	tenantRepo "github.com/KirkDiggler/prizedraw/internal/repositories/tenant"
	"go.uber.org/zap"
)

// Operation names used for metrics and logs
const (
	opUpsertPrize   = "upsert_prize"
	opDeletePrize   = "delete_prize"
	opClearPrizes   = "clear_prizes"
	opReplaceRoster = "replace_roster"
	opDraw          = "draw"
	opInvalidate    = "invalidate"
	opResetWinners  = "reset_winners"
	opLoad          = "load"
)

// service implements the Service interface
type service struct {
	store         *contextStore
	repo          tenantRepo.Repository
	randomizer    random.Randomizer
	clock         clock.Clock
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// New creates a new lottery service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Randomizer == nil {
		return nil, ErrNilRandomizer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		store:         newContextStore(),
		repo:          cfg.Repository,
		randomizer:    cfg.Randomizer,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.Named("lottery"),
	}, nil
}

// withTenant runs fn while holding the tenant's lock, hydrating the tenant
// from the repository first if this process has not seen it yet
func (s *service) withTenant(ctx context.Context, tenantID string, fn func(tc *tenantContext) error) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenant ID is required", ErrInvalidInput)
	}

	tc := s.store.resolve(tenantID)
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.state == nil {
		output, err := s.repo.GetState(ctx, &tenantRepo.GetStateInput{
			TenantID: tenantID,
		})
		if err != nil {
			metrics.RecordStorageFailure(opLoad)
			s.logger.Error("failed to load tenant state",
				zap.String("tenant_id", tenantID),
				zap.Error(err))
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		state := output.State
		if state == nil {
			state = models.NewTenantState(tenantID)
		}
		tc.state = state
	}

	return fn(tc)
}

// read runs fn against the tenant's committed state
func (s *service) read(ctx context.Context, tenantID string, fn func(state *models.TenantState)) error {
	return s.withTenant(ctx, tenantID, func(tc *tenantContext) error {
		fn(tc.state)
		return nil
	})
}

// mutate applies fn to a copy of the tenant's state, persists the given
// fields of the copy and only then publishes it. fn reports whether it changed
// anything; unchanged copies are not written.
//
// A failed write may still have been applied by Redis, so the tenant is
// dropped back to unhydrated and the next operation reloads it from storage.
// The write ignores cancellation of ctx so a disconnecting caller cannot cut
// off a transaction that is already in flight.
func (s *service) mutate(ctx context.Context, op, tenantID string, fields []tenantRepo.Field, fn func(state *models.TenantState) (bool, error)) error {
	err := s.withTenant(ctx, tenantID, func(tc *tenantContext) error {
		next := tc.state.Clone()

		changed, err := fn(next)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		err = s.repo.SaveState(context.WithoutCancel(ctx), &tenantRepo.SaveStateInput{
			State:  next,
			Fields: fields,
		})
		if err != nil {
			tc.state = nil
			metrics.RecordStorageFailure(op)
			s.logger.Error("failed to persist tenant state, will reload",
				zap.String("tenant_id", tenantID),
				zap.String("operation", op),
				zap.Error(err))
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		tc.state = next
		return nil
	})

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = Kind(err)
	}
	metrics.RecordOperation(op, outcome)

	return err
}
