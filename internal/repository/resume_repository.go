package repository

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
)

type ResumeRepository struct {
	kv store.KV
}

func NewResumeRepository(kv store.KV) *ResumeRepository {
	return &ResumeRepository{kv: kv}
}

func (r *ResumeRepository) Get(ctx context.Context, userID string) *model.ResumeAnalysis {
	all := loadTable(ctx, r.kv, keyResumes, map[string]*model.ResumeAnalysis{})
	return all[userID]
}

func (r *ResumeRepository) Save(ctx context.Context, userID string, analysis *model.ResumeAnalysis) {
	all := loadTable(ctx, r.kv, keyResumes, map[string]*model.ResumeAnalysis{})
	all[userID] = analysis
	saveTable(ctx, r.kv, keyResumes, all)
}
