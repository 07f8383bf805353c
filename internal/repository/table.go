package repository

import (
	"context"

	"sanvii_backend/internal/codec"
	"sanvii_backend/internal/store"
	"sanvii_backend/pkg/logger"

	"go.uber.org/zap"
)

// loadTable 读整表。键缺失或文本无法修复时返回零值表，读操作永远成功。
func loadTable[T any](ctx context.Context, kv store.KV, key string, fallback T) T {
	text, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Log.Error("kv read failed", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}

	out := fallback
	if !codec.Unmarshal(text, &out) {
		return fallback
	}
	return out
}

// saveTable 整值覆盖写。失败只记录日志，已持久化的旧状态保持不变。
func saveTable[T any](ctx context.Context, kv store.KV, key string, table T) {
	text, err := codec.Marshal(table)
	if err != nil {
		logger.Log.Error("kv serialize failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := kv.Set(ctx, key, text); err != nil {
		logger.Log.Error("kv write failed, keeping prior state", zap.String("key", key), zap.Error(err))
	}
}
