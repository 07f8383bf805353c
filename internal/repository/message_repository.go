package repository

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
)

// MessageRepository 职业顾问主对话的消息历史，按用户只追加
type MessageRepository struct {
	kv store.KV
}

func NewMessageRepository(kv store.KV) *MessageRepository {
	return &MessageRepository{kv: kv}
}

func (r *MessageRepository) Get(ctx context.Context, userID string) []model.ChatMessage {
	all := loadTable(ctx, r.kv, keyMessages, map[string][]model.ChatMessage{})
	if msgs, ok := all[userID]; ok {
		return msgs
	}
	return []model.ChatMessage{}
}

func (r *MessageRepository) Save(ctx context.Context, userID string, messages []model.ChatMessage) {
	all := loadTable(ctx, r.kv, keyMessages, map[string][]model.ChatMessage{})
	all[userID] = messages
	saveTable(ctx, r.kv, keyMessages, all)
}
