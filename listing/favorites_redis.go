package listing

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// FavoritesKey is the fixed storage key of the Redis-backed store.
const FavoritesKey = "business:favorites"

// RedisFavoritesStore persists the favorite set as a Redis set under a
// fixed key.
type RedisFavoritesStore struct {
	client *redis.Client
}

func NewRedisFavoritesStore(client *redis.Client) *RedisFavoritesStore {
	return &RedisFavoritesStore{client: client}
}

func (s *RedisFavoritesStore) Read(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, FavoritesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites from redis: %w", err)
	}
	return ids, nil
}

func (s *RedisFavoritesStore) Write(ctx context.Context, ids []string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, FavoritesKey)
		if len(ids) > 0 {
			members := make([]interface{}, len(ids))
			for i, id := range ids {
				members[i] = id
			}
			pipe.SAdd(ctx, FavoritesKey, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write favorites to redis: %w", err)
	}
	return nil
}
