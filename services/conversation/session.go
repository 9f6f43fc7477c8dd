package conversation

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"bookline/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps one ConversationState per session key. Get on an
// unknown key returns a fresh zero state rather than an error; creating a
// session is always implicit. Implementations return copies, so a turn that
// fails midway leaves the stored state untouched.
type SessionStore interface {
	Get(ctx context.Context, key string) (*models.ConversationState, error)
	Save(ctx context.Context, key string, state *models.ConversationState) error
	Clear(ctx context.Context, key string) error
}

// MemorySessionStore is the default store: a mutex-guarded map. Eviction is
// left to the process owner; nothing here expires on its own.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ConversationState
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*models.ConversationState),
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, key string) (*models.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.sessions[key]; ok {
		return state.Clone(), nil
	}
	return &models.ConversationState{}, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, key string, state *models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = state.Clone()
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
	return nil
}

const sessionKeyPrefix = "chat:sess:"

// RedisSessionStore keeps session state as a JSON blob per key with a TTL,
// so idle conversations expire out of the cache.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, key string) (*models.ConversationState, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+key).Result()
	if err == redis.Nil {
		return &models.ConversationState{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, key string, state *models.ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, sessionKeyPrefix+key).Err()
}

// keyedMutex serialises turns per session key while letting distinct
// sessions run fully in parallel.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	return lock
}
