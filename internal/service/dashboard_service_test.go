package service

import (
	"context"
	"testing"

	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/store"
)

func newDashboardFixture(gw AIGateway) (*DashboardService, *LessonService, *LearningPathService) {
	kv := store.NewMemoryKV()
	profiles := NewProfileService(repository.NewProfileRepository(kv))
	paths := NewLearningPathService(repository.NewPathRepository(kv), profiles, gw)
	lesson := NewLessonService(repository.NewTopicChatRepository(kv), paths, profiles, gw)
	chat := NewChatService(repository.NewMessageRepository(kv), profiles, gw)
	resume := &ResumeService{Repo: repository.NewResumeRepository(kv), Gateway: gw}
	return NewDashboardService(profiles, paths, chat, lesson, resume), lesson, paths
}

func TestDashboardOverviewEmptyUser(t *testing.T) {
	ctx := context.Background()
	dash, _, _ := newDashboardFixture(&stubGateway{})

	view := dash.Overview(ctx, "u-empty")
	if view.Profile == nil || view.Profile.JobRole != "Professional" {
		t.Fatalf("implicit profile missing: %+v", view.Profile)
	}
	if view.ActivePath != nil || view.NextTopic != nil {
		t.Fatal("empty user should have no active path")
	}
	if view.PathCount != 0 || view.MessageCount != 0 || view.OpenBlockers != 0 || view.HasResume {
		t.Fatalf("empty user counts wrong: %+v", view)
	}
}

func TestDashboardCountsOpenBlockers(t *testing.T) {
	ctx := context.Background()
	dash, lesson, paths := newDashboardFixture(&stubGateway{tutorReply: "ok"})

	path := paths.CreateManualPath(ctx, "u-1", "Go", "", []string{"A", "B"})
	topicA := path.Phases[0].Topics[0].ID
	topicB := path.Phases[0].Topics[1].ID

	if _, err := lesson.AddBlocker(ctx, "u-1", topicA, "stuck on pointers"); err != nil {
		t.Fatal(err)
	}
	chat, err := lesson.AddBlocker(ctx, "u-1", topicB, "stuck on slices")
	if err != nil {
		t.Fatal(err)
	}

	view := dash.Overview(ctx, "u-1")
	if view.OpenBlockers != 2 {
		t.Fatalf("open blockers = %d, want 2", view.OpenBlockers)
	}
	if view.NextTopic == nil || view.NextTopic.Topic.ID != topicA {
		t.Fatalf("next topic = %+v", view.NextTopic)
	}

	if _, err := lesson.ResolveBlocker(ctx, "u-1", topicB, chat.Blockers[0].ID); err != nil {
		t.Fatal(err)
	}
	view = dash.Overview(ctx, "u-1")
	if view.OpenBlockers != 1 {
		t.Fatalf("open blockers after resolve = %d, want 1", view.OpenBlockers)
	}
}
