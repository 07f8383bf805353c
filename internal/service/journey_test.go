package service

import (
	"context"
	"testing"
	"time"

	"sanvii_backend/internal/config"
	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/store"
)

// 完整的新用户旅程：注册 → 引导 → 生成 2x2 路径 → 通过第一个主题的技能验证。
func TestUserJourneyRegisterToFirstCompletedTopic(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	gw := &stubGateway{
		tutorReply: "Let's dig into goroutines.",
		questions:  []string{"Q1", "Q2", "Q3"},
		evalResult: &model.SkillCheckResult{Passed: true, Score: 0.9, Feedback: "Solid."},
		generated: &model.GeneratedPath{
			Title:    "Backend Track",
			GoalRole: "Senior Developer",
			Phases: []model.GeneratedPhase{
				{Title: "Foundations", Topics: []model.GeneratedTopic{{Title: "Goroutines"}, {Title: "Channels"}}},
				{Title: "Systems", Topics: []model.GeneratedTopic{{Title: "HTTP"}, {Title: "Storage"}}},
			},
		},
	}

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "journey-secret", ExpireTime: time.Hour}}
	profileRepo := repository.NewProfileRepository(kv)
	auth := NewAuthService(repository.NewUserRepository(kv), profileRepo, repository.NewSessionRepository(kv), cfg)
	profiles := NewProfileService(profileRepo)
	paths := NewLearningPathService(repository.NewPathRepository(kv), profiles, gw)
	lesson := NewLessonService(repository.NewTopicChatRepository(kv), paths, profiles, gw)

	user, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatal(err)
	}

	profiles.ApplyStep(ctx, user.ID, OnboardingUpdate{
		TargetRoles: []string{"Senior Developer"},
		Skills: []model.Skill{
			{Name: "Go", Level: model.SkillIntermediate},
			{Name: "SQL", Level: model.SkillBeginner},
		},
	})
	profile := profiles.CompleteOnboarding(ctx, user.ID)
	if !profile.OnboardingDone || profile.TargetRole() != "Senior Developer" {
		t.Fatalf("onboarding not applied: %+v", profile)
	}

	path, err := paths.GenerateAIPath(ctx, user.ID, "Backend Track", "", PathOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if path.Progress != 0 {
		t.Fatalf("fresh path progress = %d", path.Progress)
	}
	firstTopic := path.Phases[0].Topics[0].ID

	if _, err := lesson.SendMessage(ctx, user.ID, firstTopic, "explain goroutines"); err != nil {
		t.Fatal(err)
	}
	if _, err := lesson.StartSkillCheck(ctx, user.ID, firstTopic); err != nil {
		t.Fatal(err)
	}
	for _, answer := range []string{"a1", "a2", "a3"} {
		if _, err := lesson.SubmitAnswer(ctx, user.ID, firstTopic, answer); err != nil {
			t.Fatal(err)
		}
	}

	active := paths.ActivePath(ctx, user.ID)
	if active.Progress != 25 {
		t.Fatalf("progress after one of four topics = %d, want 25", active.Progress)
	}
	phase, next := NextTopic(active)
	if phase == nil || next == nil {
		t.Fatal("path finished too early")
	}
	if phase.Title != "Foundations" || next.Title != "Channels" {
		t.Fatalf("next topic = %s / %s", phase.Title, next.Title)
	}
}
