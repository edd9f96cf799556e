package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis, one key per tenant and field
	rosterKeyPrefix   = "seat_data:"
	prizesKeyPrefix   = "prizes:"
	winnersKeyPrefix  = "winners:"
	excludedKeyPrefix = "excludedIds:"

	defaultTimeout = 5 * time.Second
)

var (
	// ErrNilConfig is returned when the repository is built without a config
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilClient is returned when the repository is built without a client
	ErrNilClient = errors.New("redis client cannot be nil")

	// ErrMissingTenant is returned when a call does not name a tenant
	ErrMissingTenant = errors.New("tenant ID cannot be empty")

	// ErrUnknownField is returned when a save names a field outside the key group
	ErrUnknownField = errors.New("unknown state field")
)

// Config holds configuration for the Redis tenant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces every key, e.g. "prizedraw:"
	KeyPrefix string

	// Timeout bounds every round trip; defaults to 5s
	Timeout time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	keyPrefix string
	timeout   time.Duration
}

// NewRedis creates a new Redis-backed tenant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilClient
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := cfg.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		keyPrefix: cfg.KeyPrefix,
		timeout:   timeout,
	}, nil
}

// key returns the Redis key for one field of a tenant
func (r *redisRepository) key(field Field, tenantID string) (string, error) {
	var prefix string
	switch field {
	case FieldRoster:
		prefix = rosterKeyPrefix
	case FieldPrizes:
		prefix = prizesKeyPrefix
	case FieldWinners:
		prefix = winnersKeyPrefix
	case FieldExcluded:
		prefix = excludedKeyPrefix
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return r.keyPrefix + prefix + tenantID, nil
}

// GetState reads the whole key group for a tenant in one pipelined round trip
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.TenantID == "" {
		return nil, ErrMissingTenant
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipe := r.client.Pipeline()
	cmds := make(map[Field]*redis.StringCmd, len(AllFields))
	for _, field := range AllFields {
		key, err := r.key(field, input.TenantID)
		if err != nil {
			return nil, err
		}
		cmds[field] = pipe.Get(ctx, key)
	}

	// A missing key surfaces as redis.Nil on the pipeline; that is an empty value
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load tenant state: %w", err)
	}

	state := models.NewTenantState(input.TenantID)

	if err := decodeField(cmds[FieldRoster], &state.Roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	if err := decodeField(cmds[FieldPrizes], &state.Prizes); err != nil {
		return nil, fmt.Errorf("failed to decode prizes: %w", err)
	}
	if err := decodeField(cmds[FieldWinners], &state.Winners); err != nil {
		return nil, fmt.Errorf("failed to decode winners: %w", err)
	}

	var excluded []string
	if err := decodeField(cmds[FieldExcluded], &excluded); err != nil {
		return nil, fmt.Errorf("failed to decode excluded ids: %w", err)
	}
	for _, id := range excluded {
		state.Excluded[id] = struct{}{}
	}

	// A stored JSON null decodes to a nil slice
	if state.Roster == nil {
		state.Roster = []models.Person{}
	}
	if state.Prizes == nil {
		state.Prizes = []models.Prize{}
	}
	if state.Winners == nil {
		state.Winners = []models.WinRecord{}
	}

	return &GetStateOutput{
		State: state,
	}, nil
}

// SaveState writes the requested fields inside MULTI/EXEC so the key group
// is never observed half-written
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.State.TenantID == "" {
		return ErrMissingTenant
	}

	fields := input.Fields
	if len(fields) == 0 {
		fields = AllFields
	}

	// Marshal everything up front so an encoding error never reaches Redis
	values := make(map[string][]byte, len(fields))
	for _, field := range fields {
		key, err := r.key(field, input.State.TenantID)
		if err != nil {
			return err
		}

		value, err := encodeField(input.State, field)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", field, err)
		}
		values[key] = value
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range values {
			pipe.Set(ctx, key, value, 0) // No expiration
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save tenant state: %w", err)
	}

	return nil
}

func encodeField(state *models.TenantState, field Field) ([]byte, error) {
	switch field {
	case FieldRoster:
		return json.Marshal(state.Roster)
	case FieldPrizes:
		return json.Marshal(state.Prizes)
	case FieldWinners:
		return json.Marshal(state.Winners)
	case FieldExcluded:
		return json.Marshal(state.ExcludedIDs())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

func decodeField(cmd *redis.StringCmd, target any) error {
	raw, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	return json.Unmarshal(raw, target)
}
