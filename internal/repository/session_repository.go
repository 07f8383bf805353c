package repository

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
)

// SessionRecord 会话恢复记录：刷新页面后凭token找回当前登录身份
type SessionRecord struct {
	UserID    string `json:"userId"`
	CreatedAt int64  `json:"createdAt"`
}

type SessionRepository struct {
	kv store.KV
}

func NewSessionRepository(kv store.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Get(ctx context.Context, token string) (SessionRecord, bool) {
	sessions := loadTable(ctx, r.kv, keySessions, map[string]SessionRecord{})
	rec, ok := sessions[token]
	return rec, ok
}

func (r *SessionRepository) Put(ctx context.Context, token, userID string) {
	sessions := loadTable(ctx, r.kv, keySessions, map[string]SessionRecord{})
	sessions[token] = SessionRecord{UserID: userID, CreatedAt: model.NowMillis()}
	saveTable(ctx, r.kv, keySessions, sessions)
}

func (r *SessionRepository) Delete(ctx context.Context, token string) {
	sessions := loadTable(ctx, r.kv, keySessions, map[string]SessionRecord{})
	delete(sessions, token)
	saveTable(ctx, r.kv, keySessions, sessions)
}
