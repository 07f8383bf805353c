package service

import (
	"context"

	"sanvii_backend/internal/model"
)

// PathOptions AI生成课程时的可选约束
type PathOptions struct {
	Scope        string `json:"scope"`
	Timeline     string `json:"timeline"` // 月数
	Technologies string `json:"technologies"`
	UseProfile   bool   `json:"useProfile"`
}

// AIGateway 生成式AI网关。所有结构化调用失败时降级为空值，
// 不向UI层抛异常；实现见 GeminiService。
type AIGateway interface {
	Chat(ctx context.Context, history []model.ChatMessage, profile *model.CareerProfile) (string, error)
	FindJobs(ctx context.Context, profile *model.CareerProfile) (*model.JobSearchResult, error)
	LessonTutorChat(ctx context.Context, topic model.LearningTopic, history []model.ChatMessage, blockers []model.LessonBlocker, profile *model.CareerProfile, mode model.ChatMode) (string, error)
	GenerateSkillCheck(ctx context.Context, topic model.LearningTopic) ([]string, error)
	EvaluateSkillCheck(ctx context.Context, topic model.LearningTopic, history []model.ChatMessage) (*model.SkillCheckResult, error)
	LearningSuggestions(ctx context.Context, profile *model.CareerProfile) ([]model.PathSuggestion, error)
	GenerateLearningPath(ctx context.Context, goal, description string, profile *model.CareerProfile, opts PathOptions) (*model.GeneratedPath, error)
	AnalyzeResume(ctx context.Context, resumeText string) (*model.ResumeAnalysis, error)
}
