package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/uuid"
)

const indexKey = "characters"

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	definitions   health.DefinitionLookup
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// Definitions resolves stored condition kinds, usually the catalog
	Definitions health.DefinitionLookup

	// UUIDGenerator assigns IDs to conditions added after loading
	UUIDGenerator uuid.Generator

	Logger *zap.Logger
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.Definitions == nil {
		panic("condition definitions cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepo{
		client:        cfg.Client,
		definitions:   cfg.Definitions,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.Named("characters"),
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*health.Character, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	return r.decode(jsonData)
}

// Put creates or replaces a character
func (r *redisRepo) Put(ctx context.Context, char *health.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	jsonData, err := json.Marshal(toCharacterData(char))
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, char.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store character: %w", err)
	}
	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("character ID is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, indexKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if del.Val() == 0 {
		return apperrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return nil
}

// List returns every stored character ordered by ID. Index entries whose
// character is gone are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*health.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}
	if len(ids) == 0 {
		return []*health.Character{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get characters: %w", err)
	}

	characters := make([]*health.Character, 0, len(values))
	for i, value := range values {
		jsonData, ok := value.(string)
		if !ok {
			r.logger.Warn("character in index but not stored", zap.String("character", ids[i]))
			continue
		}
		char, err := r.decode(jsonData)
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to load character %s", ids[i])
		}
		characters = append(characters, char)
	}
	return characters, nil
}

func (r *redisRepo) decode(jsonData string) (*health.Character, error) {
	var data CharacterData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	char, err := fromCharacterData(&data, r.definitions, r.uuidGenerator)
	if err != nil {
		return nil, fmt.Errorf("failed to convert character from data: %w", err)
	}
	return char, nil
}
