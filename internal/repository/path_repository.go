package repository

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
)

// PathRepository 学习路径与活动路径指针。一个用户可拥有多条路径，
// 活动指针单独存储，二者之间不保证原子性（单用户单标签页假设）。
type PathRepository struct {
	kv store.KV
}

func NewPathRepository(kv store.KV) *PathRepository {
	return &PathRepository{kv: kv}
}

func (r *PathRepository) GetPaths(ctx context.Context, userID string) []model.LearningPath {
	all := loadTable(ctx, r.kv, keyPaths, map[string][]model.LearningPath{})
	if paths, ok := all[userID]; ok {
		return paths
	}
	return []model.LearningPath{}
}

func (r *PathRepository) SavePaths(ctx context.Context, userID string, paths []model.LearningPath) {
	all := loadTable(ctx, r.kv, keyPaths, map[string][]model.LearningPath{})
	all[userID] = paths
	saveTable(ctx, r.kv, keyPaths, all)
}

func (r *PathRepository) GetActivePathID(ctx context.Context, userID string) string {
	ids := loadTable(ctx, r.kv, keyActivePath, map[string]string{})
	return ids[userID]
}

func (r *PathRepository) SetActivePathID(ctx context.Context, userID, pathID string) {
	ids := loadTable(ctx, r.kv, keyActivePath, map[string]string{})
	ids[userID] = pathID
	saveTable(ctx, r.kv, keyActivePath, ids)
}
