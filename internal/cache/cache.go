// Package cache is a time-boxed cache of note lists kept in the client's
// local storage. Entries expire after a TTL and are purged lazily on read.
// The cache is never the source of truth: a miss always falls back to the
// backend.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// DefaultTTL is how long an entry stays valid when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// Scope names one cached view of a user's notes.
type Scope string

const (
	ScopeActive Scope = "active"
	ScopePinned Scope = "pinned"
)

const keyPrefix = "notes:"

// Key builds the cache key of scope for email: notes:<email>:<scope>.
func Key(email string, scope Scope) string {
	return userPrefix(email) + string(scope)
}

func userPrefix(email string) string {
	return keyPrefix + email + ":"
}

// entry is the persisted form of a cached value. Timestamp is the write time
// in Unix milliseconds.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Cache stores JSON payloads in a [store.LocalStorage] with a per-entry
// timestamp. There is no locking beyond what the storage provides; the last
// writer wins.
type Cache struct {
	storage store.LocalStorage
	ttl     time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

// Option customises a [Cache].
type Option func(*Cache)

// WithClock replaces the wall clock used for timestamps and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New returns a Cache over storage. A non-positive ttl selects [DefaultTTL].
func New(storage store.LocalStorage, ttl time.Duration, logger *logger.Logger, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		storage: storage,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get decodes the payload stored under key into dst and reports whether it
// did. A missing, expired or unparseable entry all yield false; expired and
// unparseable entries are removed. Storage failures are logged and treated
// as a miss.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	raw, ok, err := c.storage.GetItem(ctx, key)
	if err != nil {
		c.logger.Err(err).Str("func", "*Cache.Get").Str("key", key).Msg("error reading cache entry")
		return false
	}
	if !ok {
		return false
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		c.logger.Warn().Err(err).Str("func", "*Cache.Get").Str("key", key).Msg("purging unparseable cache entry")
		c.remove(ctx, key)
		return false
	}

	age := c.now().Sub(time.UnixMilli(e.Timestamp))
	if age > c.ttl {
		c.logger.Debug().Str("func", "*Cache.Get").Str("key", key).Dur("age", age).Msg("cache entry expired")
		c.remove(ctx, key)
		return false
	}

	if err := json.Unmarshal(e.Data, dst); err != nil {
		c.logger.Warn().Err(err).Str("func", "*Cache.Get").Str("key", key).Msg("purging undecodable cache payload")
		c.remove(ctx, key)
		return false
	}

	return true
}

// Set stores payload under key stamped with the current time, overwriting
// any previous entry.
func (c *Cache) Set(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding cache payload: %w", err)
	}

	raw, err := json.Marshal(entry{Data: data, Timestamp: c.now().UnixMilli()})
	if err != nil {
		return fmt.Errorf("error encoding cache entry: %w", err)
	}

	if err := c.storage.SetItem(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("error writing cache entry: %w", err)
	}

	return nil
}

// InvalidateUser removes every entry whose key starts with notes:<email>:.
// Keys of other users and non-cache keys are left untouched.
func (c *Cache) InvalidateUser(ctx context.Context, email string) error {
	keys, err := c.storage.Keys(ctx)
	if err != nil {
		return fmt.Errorf("error listing cache keys: %w", err)
	}

	prefix := userPrefix(email)
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := c.storage.RemoveItem(ctx, key); err != nil {
			return fmt.Errorf("error removing cache entry %q: %w", key, err)
		}
	}

	c.logger.Debug().Str("func", "*Cache.InvalidateUser").Str("email", email).Msg("user cache invalidated")
	return nil
}

func (c *Cache) remove(ctx context.Context, key string) {
	if err := c.storage.RemoveItem(ctx, key); err != nil {
		c.logger.Err(err).Str("func", "*Cache.remove").Str("key", key).Msg("error removing cache entry")
	}
}
