package parkedrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	parkedKeyPrefix = "parked:"
	indexKey        = "parked:index"
)

// takeAndDeleteScript consumes a parked order atomically: read, delete, and
// drop the index entry in one round trip, so concurrent restores of the same
// id produce exactly one winner.
var takeAndDeleteScript = redis.NewScript(`
local value = redis.call('GET', KEYS[1])
if not value then
	return false
end

redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return value
`)

// RedisParkedOrderRepository implements the ParkedOrderRepository port on
// Redis. Each parked order is a JSON document under its own key, and a
// sorted set scored by creation time indexes them for listing and retention
// sweeps.
type RedisParkedOrderRepository struct {
	client *redis.Client
}

// NewRedisParkedOrderRepository creates a Redis-backed parked order store.
func NewRedisParkedOrderRepository(client *redis.Client) *RedisParkedOrderRepository {
	return &RedisParkedOrderRepository{client: client}
}

// Add persists a parked order snapshot and indexes it by creation time.
func (r *RedisParkedOrderRepository) Add(ctx context.Context, aggregate *cart.ParkedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	raw, err := marshal(aggregate)
	if err != nil {
		return err
	}

	id := aggregate.ID().String()
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, parkedKeyPrefix+id, raw, 0)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(aggregate.CreatedAt().UnixMilli()),
		Member: id,
	})

	_, err = pipe.Exec(ctx)
	return err
}

// Get retrieves a parked order without consuming it.
func (r *RedisParkedOrderRepository) Get(ctx context.Context, id kernel.UUID) (*cart.ParkedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, parkedKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("parkedOrder", id.String())
		}
		return nil, err
	}

	return unmarshal(raw)
}

// TakeAndDelete atomically retrieves a parked order and removes it.
// Every caller after the first gets a not-found error.
func (r *RedisParkedOrderRepository) TakeAndDelete(ctx context.Context, id kernel.UUID) (*cart.ParkedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw, err := takeAndDeleteScript.Run(
		ctx, r.client,
		[]string{parkedKeyPrefix + id.String(), indexKey},
		id.String(),
	).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("parkedOrder", id.String())
		}
		return nil, err
	}

	return unmarshal([]byte(raw))
}

// Delete discards a parked order without restoring it.
func (r *RedisParkedOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, parkedKeyPrefix+id.String())
	pipe.ZRem(ctx, indexKey, id.String())

	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if deleted.Val() == 0 {
		return errs.NewObjectNotFoundError("parkedOrder", id.String())
	}
	return nil
}

// GetAll retrieves every parked order, oldest first.
func (r *RedisParkedOrderRepository) GetAll(ctx context.Context) ([]*cart.ParkedOrder, error) {
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	return r.loadAll(ctx, ids)
}

// GetAllCreatedBefore retrieves parked orders older than the cutoff, oldest
// first. The retention sweep uses this to expire stale carts.
func (r *RedisParkedOrderRepository) GetAllCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*cart.ParkedOrder, error) {
	ids, err := r.client.ZRangeByScore(ctx, indexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(cutoff.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, err
	}

	return r.loadAll(ctx, ids)
}

// loadAll resolves index members to documents, skipping entries whose key
// was consumed between the index read and the fetch.
func (r *RedisParkedOrderRepository) loadAll(ctx context.Context, ids []string) ([]*cart.ParkedOrder, error) {
	parked := make([]*cart.ParkedOrder, 0, len(ids))
	if len(ids) == 0 {
		return parked, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, parkedKeyPrefix+id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		aggregate, unmarshalErr := unmarshal([]byte(raw))
		if unmarshalErr != nil {
			return nil, unmarshalErr
		}
		parked = append(parked, aggregate)
	}

	return parked, nil
}
