package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/reshetovitsme/chat-moderator/internal/modules/admincache/domain"
	"github.com/samber/oops"
)

// RedisStore shares entries between bot instances. Expiry is delegated to
// redis by setting the key TTL to the entry's remaining lifetime.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a store on an existing redis client
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func redisKey(chatID, userID int64) string {
	return fmt.Sprintf("admincache:%d:%d", chatID, userID)
}

func (s *RedisStore) Get(ctx context.Context, chatID, userID int64) (*domain.Entry, bool, error) {
	raw, err := s.rdb.Get(ctx, redisKey(chatID, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, oops.With("chat_id", chatID, "user_id", userID, "context", "failed to read admin cache").Wrap(err)
	}

	var entry domain.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, oops.With("chat_id", chatID, "user_id", userID, "context", "malformed admin cache entry").Wrap(err)
	}
	if !entry.Valid(time.Now()) {
		return nil, false, nil
	}
	return &entry, true, nil
}

func (s *RedisStore) Set(ctx context.Context, entry domain.Entry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return oops.Wrap(err)
	}
	if err := s.rdb.Set(ctx, redisKey(entry.ChatID, entry.UserID), raw, ttl).Err(); err != nil {
		return oops.With("chat_id", entry.ChatID, "user_id", entry.UserID, "context", "failed to write admin cache").Wrap(err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, chatID, userID int64) error {
	if err := s.rdb.Del(ctx, redisKey(chatID, userID)).Err(); err != nil {
		return oops.With("chat_id", chatID, "user_id", userID, "context", "failed to delete admin cache entry").Wrap(err)
	}
	return nil
}
