package widget

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Anthonyushie/lightning-rps/internal/apperrors"
	"github.com/Anthonyushie/lightning-rps/pkg/db"
)

// StateStore is the persistence port for widget session state. The
// engines only ever see this interface, never a concrete store.
type StateStore interface {
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// RedisStateStore keeps widget state in Redis as JSON blobs. A zero TTL
// keeps entries until deleted.
type RedisStateStore struct {
	TTL time.Duration
}

func NewRedisStateStore(ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{TTL: ttl}
}

func (s *RedisStateStore) Load(ctx context.Context, key string, v any) (bool, error) {
	val, err := db.Rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, apperrors.NewAppError(500, "error loading widget state", err)
	}

	if err := json.Unmarshal([]byte(val), v); err != nil {
		return false, apperrors.NewAppError(500, "error unmarshalling widget state", err)
	}
	return true, nil
}

func (s *RedisStateStore) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewAppError(500, "error serializing widget state", err)
	}

	if err := db.Rdb.Set(ctx, key, data, s.TTL).Err(); err != nil {
		return apperrors.NewAppError(500, "error saving widget state", err)
	}
	return nil
}

func (s *RedisStateStore) Delete(ctx context.Context, key string) error {
	if err := db.Rdb.Del(ctx, key).Err(); err != nil {
		return apperrors.NewAppError(500, "error deleting widget state", err)
	}
	return nil
}

// MemoryStateStore is an in-process StateStore for tests and embedded use.
type MemoryStateStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{m: make(map[string][]byte)}
}

func (s *MemoryStateStore) Load(ctx context.Context, key string, v any) (bool, error) {
	s.mu.RLock()
	data, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStateStore) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.m[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStateStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}
