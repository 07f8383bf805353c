package model

import (
	"time"

	"github.com/google/uuid"
)

// NewID 生成带前缀的实体ID，如 "u-xxxx"、"lp-xxxx"
func NewID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// NowMillis 所有时间戳统一为毫秒
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
