package service

import (
	"context"

	"sanvii_backend/internal/model"
)

// JobService 基于画像目标岗位做实时职位匹配
type JobService struct {
	Profiles *ProfileService
	Gateway  AIGateway
}

func NewJobService(profiles *ProfileService, gateway AIGateway) *JobService {
	return &JobService{Profiles: profiles, Gateway: gateway}
}

// Search 搜索3-4个实时职位，附匹配度、缺口技能与引用来源
func (s *JobService) Search(ctx context.Context, userID string) (*model.JobSearchResult, error) {
	profile := s.Profiles.Get(ctx, userID)
	return s.Gateway.FindJobs(ctx, profile)
}
