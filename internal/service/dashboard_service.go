package service

import (
	"context"

	"sanvii_backend/internal/model"
)

// NextTopicView 仪表盘上的"继续学习"入口
type NextTopicView struct {
	PhaseTitle string              `json:"phaseTitle"`
	Topic      model.LearningTopic `json:"topic"`
}

// DashboardView 首页聚合视图，一次请求拿齐
type DashboardView struct {
	Profile      *model.CareerProfile `json:"profile"`
	ActivePath   *model.LearningPath  `json:"activePath"`
	NextTopic    *NextTopicView       `json:"nextTopic"`
	PathCount    int                  `json:"pathCount"`
	MessageCount int                  `json:"messageCount"`
	OpenBlockers int                  `json:"openBlockers"`
	ResumeSkills []string             `json:"resumeSkills"`
	HasResume    bool                 `json:"hasResume"`
}

// DashboardService 聚合画像、活动路径与简历状态
type DashboardService struct {
	Profiles *ProfileService
	Paths    *LearningPathService
	Chat     *ChatService
	Lessons  *LessonService
	Resume   *ResumeService
}

func NewDashboardService(profiles *ProfileService, paths *LearningPathService, chat *ChatService, lessons *LessonService, resume *ResumeService) *DashboardService {
	return &DashboardService{Profiles: profiles, Paths: paths, Chat: chat, Lessons: lessons, Resume: resume}
}

func (s *DashboardService) Overview(ctx context.Context, userID string) *DashboardView {
	view := &DashboardView{
		Profile:      s.Profiles.Get(ctx, userID),
		ResumeSkills: []string{},
	}

	paths := s.Paths.ListPaths(ctx, userID)
	view.PathCount = len(paths)

	if active := s.Paths.ActivePath(ctx, userID); active != nil {
		view.ActivePath = active
		if phase, topic := NextTopic(active); topic != nil {
			view.NextTopic = &NextTopicView{PhaseTitle: phase.Title, Topic: *topic}
		}
	}

	view.MessageCount = len(s.Chat.History(ctx, userID))
	view.OpenBlockers = s.Lessons.UnresolvedBlockerCount(ctx, userID)

	if analysis := s.Resume.Latest(ctx, userID); analysis != nil {
		view.HasResume = true
		view.ResumeSkills = analysis.Skills
	}
	return view
}
