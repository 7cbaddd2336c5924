// Package cachetest provides an in-memory stand-in for the Redis commands used by utils.ListCache.
package cachetest

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps values in memory and can be told to fail
type Store struct {
	mu       sync.Mutex
	data     map[string]string
	TTLs     map[string]time.Duration
	Gets     int
	Sets     int
	Incrs    int
	FailGet  error
	FailSet  error
	FailIncr error
}

// New returns an empty Store
func New() *Store {
	return &Store{data: map[string]string{}, TTLs: map[string]time.Duration{}}
}

func (s *Store) Get(_ context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gets++
	if s.FailGet != nil {
		return redis.NewStringResult("", s.FailGet)
	}
	val, ok := s.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (s *Store) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sets++
	if s.FailSet != nil {
		return redis.NewStatusResult("", s.FailSet)
	}
	switch v := value.(type) {
	case []byte:
		s.data[key] = string(v)
	case string:
		s.data[key] = v
	default:
		s.data[key] = fmt.Sprint(v)
	}
	s.TTLs[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (s *Store) Incr(_ context.Context, key string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Incrs++
	if s.FailIncr != nil {
		return redis.NewIntResult(0, s.FailIncr)
	}
	var n int64
	if val, ok := s.data[key]; ok {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return redis.NewIntResult(0, fmt.Errorf("ERR value is not an integer or out of range"))
		}
		n = parsed
	}
	n++
	s.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

// Has reports whether key is cached
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

// Put seeds a raw value
func (s *Store) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
