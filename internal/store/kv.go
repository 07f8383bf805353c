// Package store 封装底层键值存储，取/存均为整串JSON文本。
package store

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
)

type KV interface {
	// Get 返回键对应的文本；键不存在时 ok 为 false 且无错误
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// RedisKV 生产实现，值不设过期
type RedisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

// MemoryKV 测试与dev模式用的内存实现
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string

	// FailWrites 置true时所有Set返回错误，用于验证写失败的降级行为
	FailWrites bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (s *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

var errWriteFailed = &WriteError{}

type WriteError struct{}

func (e *WriteError) Error() string { return "kv: write rejected" }

func (s *MemoryKV) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errWriteFailed
	}
	s.data[key] = value
	return nil
}
