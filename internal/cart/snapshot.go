package cart

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/redis"
)

// SnapshotStore persists cart state across restarts. Implementations must
// surface failures to the caller; the service decides what to do with them.
type SnapshotStore interface {
	Save(ctx context.Context, sessionID string, c *Cart) error
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSnapshotStore keeps one JSON blob per session under the cart key
// namespace, refreshed with a sliding TTL on every save.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) (*RedisSnapshotStore, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart: nil redis client")
	}
	if ttl <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart: snapshot ttl must be positive")
	}
	return &RedisSnapshotStore{client: client, ttl: ttl}, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, sessionID string, c *Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cart: encode snapshot")
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart: save snapshot")
	}
	return nil
}

// Load returns (nil, nil) when no snapshot exists for the session.
func (s *RedisSnapshotStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	payload, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart: load snapshot")
	}

	var c Cart
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cart: decode snapshot")
	}
	if c.Items == nil {
		c.Items = []LineItem{}
	}
	return &c, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart: delete snapshot")
	}
	return nil
}
