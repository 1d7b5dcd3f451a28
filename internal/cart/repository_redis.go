package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisRepository keeps each buyer's pending cart as a single JSON-encoded
// array under one key. There is deliberately no per-item structure in Redis:
// the contract is whole-sequence read-modify-write, so a concurrent writer
// simply overwrites (lost updates are accepted).
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func cartKey(buyerID int) string {
	return fmt.Sprintf("cart:%d", buyerID)
}

func (r *RedisRepository) load(ctx context.Context, buyerID int) ([]Item, error) {
	raw, err := r.client.Get(ctx, cartKey(buyerID)).Result()
	if err == redis.Nil {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisRepository) store(ctx context.Context, buyerID int, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(buyerID), raw, 0).Err()
}

func (r *RedisRepository) Append(ctx context.Context, buyerID int, item Item) ([]Item, error) {
	items, err := r.load(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	if err := r.store(ctx, buyerID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisRepository) RemoveAt(ctx context.Context, buyerID int, index int) ([]Item, error) {
	items, err := r.load(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, ErrBadIndex
	}
	items = append(items[:index], items[index+1:]...)
	if err := r.store(ctx, buyerID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisRepository) List(ctx context.Context, buyerID int) ([]Item, error) {
	return r.load(ctx, buyerID)
}

func (r *RedisRepository) Clear(ctx context.Context, buyerID int) error {
	return r.client.Del(ctx, cartKey(buyerID)).Err()
}
