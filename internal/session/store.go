package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-shop-server/pkg/helpers"
	"github.com/oksasatya/go-shop-server/pkg/validation"
)

// CartItem is a single cart line kept in the session.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Data is the durable session record. Flash slots are one-shot: they are
// cleared the first time the next rendered view reads them.
type Data struct {
	UserID       string               `json:"user_id,omitempty"`
	Cart         []CartItem           `json:"cart,omitempty"`
	FlashErrors  []validation.Message `json:"flash_errors,omitempty"`
	FlashSuccess string               `json:"flash_success,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// Store persists session records keyed by opaque session id.
type Store interface {
	// Get returns (nil, nil) when the session id is unknown or expired.
	Get(ctx context.Context, sid string) (*Data, error)
	Save(ctx context.Context, sid string, d *Data, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

func sessionKey(sid string) string {
	return "session:" + sid
}

// RedisStore keeps sessions in redis as JSON values with a TTL.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*Data, error) {
	var d Data
	found, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(sid), &d)
	if err != nil || !found {
		return nil, err
	}
	return &d, nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, d *Data, ttl time.Duration) error {
	return helpers.RedisSetJSON(ctx, s.rdb, sessionKey(sid), d, ttl)
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return helpers.RedisDel(ctx, s.rdb, sessionKey(sid))
}

// MemoryStore is an in-process Store for tests and redis-less local runs.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]*Data
	ttls map[string]time.Duration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]*Data{}, ttls: map[string]time.Duration{}}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data[sid]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (s *MemoryStore) Save(_ context.Context, sid string, d *Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *d
	s.data[sid] = &cp
	s.ttls[sid] = ttl
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sid)
	delete(s.ttls, sid)
	return nil
}

// TTL reports the ttl recorded by the last Save, for tests.
func (s *MemoryStore) TTL(sid string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ttls[sid]
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
