package editor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"tg_dealscan/internal/domain/value"
)

const (
	memoryCleanupInterval = 10 * time.Minute
	redisKeyPrefix        = "dealscan:pending_edit:"
)

// PendingStore хранит поле, значение которого ожидается от сессии.
// Запись создаётся в Begin и удаляется при первом же Pop.
type PendingStore interface {
	Put(ctx context.Context, session int64, field value.SettingField) error
	// Pop атомарно возвращает и удаляет ожидаемое поле. ok == false, если ничего не ожидается.
	Pop(ctx context.Context, session int64) (field value.SettingField, ok bool, err error)
}

// MemoryPendingStore хранилище в памяти процесса. ttl <= 0 означает бессрочное ожидание.
type MemoryPendingStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryPendingStore(ttl time.Duration) *MemoryPendingStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &MemoryPendingStore{
		cache: cache.New(ttl, memoryCleanupInterval),
	}
}

func (s *MemoryPendingStore) Put(_ context.Context, session int64, field value.SettingField) error {
	s.cache.SetDefault(sessionKey(session), field)
	return nil
}

func (s *MemoryPendingStore) Pop(_ context.Context, session int64) (value.SettingField, bool, error) {
	key := sessionKey(session)

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	s.cache.Delete(key)

	field, ok := raw.(value.SettingField)
	if !ok {
		return "", false, fmt.Errorf("unexpected pending value %T", raw)
	}

	return field, true, nil
}

// RedisPendingStore общее хранилище для нескольких экземпляров бота.
type RedisPendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPendingStore(client *redis.Client, ttl time.Duration) *RedisPendingStore {
	return &RedisPendingStore{
		client: client,
		ttl:    max(ttl, 0),
	}
}

func (s *RedisPendingStore) Put(ctx context.Context, session int64, field value.SettingField) error {
	if err := s.client.Set(ctx, redisKeyPrefix+sessionKey(session), field.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func (s *RedisPendingStore) Pop(ctx context.Context, session int64) (value.SettingField, bool, error) {
	raw, err := s.client.GetDel(ctx, redisKeyPrefix+sessionKey(session)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis.GetDel: %w", err)
	}

	field, err := value.ParseSettingField(raw)
	if err != nil {
		return "", false, fmt.Errorf("value.ParseSettingField: %w", err)
	}

	return field, true, nil
}

func sessionKey(session int64) string {
	return strconv.FormatInt(session, 10)
}
