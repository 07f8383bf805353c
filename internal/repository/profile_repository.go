package repository

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
)

type ProfileRepository struct {
	kv store.KV
}

func NewProfileRepository(kv store.KV) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

// Get 无档案时返回nil，由服务层决定隐式默认档案
func (r *ProfileRepository) Get(ctx context.Context, userID string) *model.CareerProfile {
	profiles := loadTable(ctx, r.kv, keyProfiles, map[string]*model.CareerProfile{})
	return profiles[userID]
}

func (r *ProfileRepository) Save(ctx context.Context, profile *model.CareerProfile) {
	profiles := loadTable(ctx, r.kv, keyProfiles, map[string]*model.CareerProfile{})
	profiles[profile.UserID] = profile
	saveTable(ctx, r.kv, keyProfiles, profiles)
}
