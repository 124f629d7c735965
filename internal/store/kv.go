package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrUnchanged is returned by an UpdateFunc to signal that the stored value
// should be left as-is. Update treats it as success.
var ErrUnchanged = errors.New("store: value unchanged")

// UpdateFunc computes the next value for a key from its current state.
// exists is false when the key is absent (current is then empty).
type UpdateFunc func(current string, exists bool) (next string, err error)

// KV is the flat key-value backend holding records and indexes. Values are
// opaque strings; callers layer JSON on top.
type KV interface {
	// Get returns the raw value at key, reporting absence via ok.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put writes value at key, unconditionally overwriting.
	Put(ctx context.Context, key, value string) error

	// Update applies fn to the current value under check-and-set semantics:
	// the write only lands if the key was not modified concurrently, and the
	// whole read-modify-write is retried on conflict.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// casAttempts bounds Update retries under write contention. Classroom-scale
// traffic makes even a second attempt rare.
const casAttempts = 8

// RedisKV implements KV on a Redis client. Update uses WATCH/MULTI so that
// concurrent read-modify-write cycles on the same key cannot silently drop
// each other's writes.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV wraps a connected Redis client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get returns the raw value at key.
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Put writes value at key with no expiry.
func (r *RedisKV) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Update runs fn over the watched key and writes the result transactionally.
// A concurrent write to the key aborts the transaction and the cycle is
// retried from a fresh read.
func (r *RedisKV) Update(ctx context.Context, key string, fn UpdateFunc) error {
	for attempt := 0; attempt < casAttempts; attempt++ {
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := tx.Get(ctx, key).Result()
			exists := true
			if errors.Is(err, redis.Nil) {
				current, exists = "", false
			} else if err != nil {
				return err
			}

			next, err := fn(current, exists)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, next, 0)
				return nil
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrUnchanged) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("update %s: %w", key, err)
		}
		return nil
	}
	return fmt.Errorf("update %s: aborted after %d conflicting writes", key, casAttempts)
}
