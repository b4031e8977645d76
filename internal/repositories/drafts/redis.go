package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	"github.com/KirkDiggler/rpg-content-admin/internal/uuid"
)

// redisRepo stores each draft as JSON under draft:{id} with an owner index set
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	ttl           time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	TTL           time.Duration // 0 keeps drafts until deleted
}

// NewRedisRepository creates a new Redis-backed draft repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		ttl:           cfg.TTL,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = RealTimeProvider()
	}

	return repo
}

// NewRedis creates a Redis draft repository with a 24 hour TTL
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
		TTL:    24 * time.Hour,
	})
}

func draftKey(id string) string {
	return fmt.Sprintf("draft:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:drafts", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, draft *Draft) error {
	if err := validate(draft); err != nil {
		return err
	}
	if draft.ID == "" {
		draft.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, draftKey(draft.ID)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check draft existence").WithMeta("draft_id", draft.ID)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("draft with ID '%s' already exists", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	now := r.timeProvider.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	return r.set(ctx, draft)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Draft, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("draft ID is required")
	}

	data, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("draft with ID '%s' not found", id).
				WithMeta("draft_id", id)
		}
		return nil, dnderr.Wrap(err, "failed to get draft from Redis").WithMeta("draft_id", id)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to unmarshal draft").
			WithMeta("draft_id", id)
	}

	return &draft, nil
}

func (r *redisRepo) Update(ctx context.Context, draft *Draft) error {
	if err := validate(draft); err != nil {
		return err
	}
	if draft.ID == "" {
		return dnderr.InvalidArgument("draft ID is required")
	}

	existing, err := r.Get(ctx, draft.ID)
	if err != nil {
		return err
	}

	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, draft)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	draft, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, draftKey(id))
	pipe.SRem(ctx, ownerKey(draft.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete draft from Redis").WithMeta("draft_id", id)
	}

	return nil
}

// ListByOwner loads every indexed draft in parallel. Expired drafts are pruned from the index.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*Draft, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get owner drafts from Redis").WithMeta("owner_id", ownerID)
	}

	loaded := make([]*Draft, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			draft, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return dnderr.Wrapf(err, "failed to get draft %s", id)
			}
			loaded[i] = draft
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Draft, 0, len(loaded))
	var stale []any
	for i, draft := range loaded {
		if draft == nil {
			stale = append(stale, ids[i])
			continue
		}
		out = append(out, draft)
	}
	if len(stale) > 0 {
		if err := r.client.SRem(ctx, ownerKey(ownerID), stale...).Err(); err != nil {
			return nil, dnderr.Wrap(err, "failed to prune expired drafts").WithMeta("owner_id", ownerID)
		}
	}
	sortDrafts(out)

	return out, nil
}

func (r *redisRepo) set(ctx context.Context, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal draft")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, draftKey(draft.ID), string(data), r.ttl)
	pipe.SAdd(ctx, ownerKey(draft.OwnerID), draft.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to store draft in Redis").WithMeta("draft_id", draft.ID)
	}

	return nil
}
