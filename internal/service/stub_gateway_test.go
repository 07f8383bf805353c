package service

import (
	"context"

	"sanvii_backend/internal/model"
)

// stubGateway 可编程的AIGateway测试替身
type stubGateway struct {
	chatReply   string
	chatErr     error
	tutorReply  string
	tutorErr    error
	questions   []string
	questionErr error
	evalResult  *model.SkillCheckResult
	evalErr     error
	suggestions []model.PathSuggestion
	generated   *model.GeneratedPath
	generateErr error
	jobs        *model.JobSearchResult
	analysis    *model.ResumeAnalysis
	analysisErr error

	tutorCalls int
	evalCalls  int
}

func (g *stubGateway) Chat(ctx context.Context, history []model.ChatMessage, profile *model.CareerProfile) (string, error) {
	return g.chatReply, g.chatErr
}

func (g *stubGateway) FindJobs(ctx context.Context, profile *model.CareerProfile) (*model.JobSearchResult, error) {
	return g.jobs, nil
}

func (g *stubGateway) LessonTutorChat(ctx context.Context, topic model.LearningTopic, history []model.ChatMessage, blockers []model.LessonBlocker, profile *model.CareerProfile, mode model.ChatMode) (string, error) {
	g.tutorCalls++
	return g.tutorReply, g.tutorErr
}

func (g *stubGateway) GenerateSkillCheck(ctx context.Context, topic model.LearningTopic) ([]string, error) {
	return g.questions, g.questionErr
}

func (g *stubGateway) EvaluateSkillCheck(ctx context.Context, topic model.LearningTopic, history []model.ChatMessage) (*model.SkillCheckResult, error) {
	g.evalCalls++
	return g.evalResult, g.evalErr
}

func (g *stubGateway) LearningSuggestions(ctx context.Context, profile *model.CareerProfile) ([]model.PathSuggestion, error) {
	return g.suggestions, nil
}

func (g *stubGateway) GenerateLearningPath(ctx context.Context, goal, description string, profile *model.CareerProfile, opts PathOptions) (*model.GeneratedPath, error) {
	return g.generated, g.generateErr
}

func (g *stubGateway) AnalyzeResume(ctx context.Context, resumeText string) (*model.ResumeAnalysis, error) {
	return g.analysis, g.analysisErr
}
