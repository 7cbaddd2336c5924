package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Sentinel comparison
	"fmt"           // Key formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// CacheList names a cached listing
type CacheList string

// Cached listings
const (
	UsersList     CacheList = "users"     // Active users listing
	StoresList    CacheList = "stores"    // Active stores listing
	EmployeesList CacheList = "employees" // Active employees listing
)

// VersionKey holds the counter bumped by every write to the listing
func (l CacheList) VersionKey() string {
	return "bungeoppang:" + string(l) + ":version"
}

// DataKey holds the listing as read under the given version
func (l CacheList) DataKey(version int64) string {
	return fmt.Sprintf("bungeoppang:%s:list:v%d", l, version)
}

// CacheStore is the subset of Redis commands the cache uses; *redis.Client satisfies it
type CacheStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb CacheStore, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err // Corrupt entry counts as a miss
	}
	return true, nil
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb CacheStore, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// GetVersion reads the current version of a listing; a missing counter is version 0
func GetVersion(ctx context.Context, rdb CacheStore, list CacheList) (int64, error) {
	version, err := rdb.Get(ctx, list.VersionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil // No write seen yet
	}
	return version, err
}

// BumpVersion moves a listing to a new version so earlier entries are never read again
func BumpVersion(ctx context.Context, rdb CacheStore, list CacheList) (int64, error) {
	return rdb.Incr(ctx, list.VersionKey()).Result()
}

// ListCache caches listing responses; a nil store disables it.
// Failures are logged and reported as misses so requests never fail on Redis.
type ListCache struct {
	store CacheStore    // Redis commands, nil when caching is off
	ttl   time.Duration // Entry lifetime
}

// NewListCache wraps store with the given TTL
func NewListCache(store CacheStore, ttl time.Duration) *ListCache {
	return &ListCache{store: store, ttl: ttl}
}

// Enabled reports whether a store is configured
func (lc *ListCache) Enabled() bool {
	return lc != nil && lc.store != nil
}

// CacheEntry is a listing key pinned to the version current when a reader started.
// A reader that races a write saves under the old version, which no later reader looks up.
// A nil entry always misses.
type CacheEntry struct {
	cache *ListCache // Owning cache
	key   string     // Versioned data key
}

// Entry pins list to its current version; call it before reading the database
func (lc *ListCache) Entry(ctx context.Context, list CacheList) *CacheEntry {
	if !lc.Enabled() {
		return nil
	}
	version, err := GetVersion(ctx, lc.store, list)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"list":  list,        // Listing name
			"error": err.Error(), // Error message
		}).Warn("Cache version read failed")
		return nil
	}
	return &CacheEntry{cache: lc, key: list.DataKey(version)}
}

// Load fills dest from the cache and reports a hit
func (e *CacheEntry) Load(ctx context.Context, dest any) bool {
	if e == nil {
		return false
	}
	found, err := GetCache(ctx, e.cache.store, e.key, dest)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   e.key,       // Cache key
			"error": err.Error(), // Error message
		}).Warn("Cache read failed")
		return false
	}
	return found
}

// Save stores value under the pinned key
func (e *CacheEntry) Save(ctx context.Context, value any) {
	if e == nil {
		return
	}
	if err := SetCache(ctx, e.cache.store, e.key, value, e.cache.ttl); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   e.key,       // Cache key
			"error": err.Error(), // Error message
		}).Warn("Cache write failed")
	}
}

// Invalidate bumps the version of each list after a write changed it
func (lc *ListCache) Invalidate(ctx context.Context, lists ...CacheList) {
	if !lc.Enabled() {
		return
	}
	for _, list := range lists {
		if _, err := BumpVersion(ctx, lc.store, list); err != nil {
			logrus.WithFields(logrus.Fields{
				"list":  list,        // Listing name
				"error": err.Error(), // Error message
			}).Warn("Cache invalidation failed")
		}
	}
}
