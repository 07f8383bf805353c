package service

import (
	"context"
	"errors"
	"testing"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/store"
	"sanvii_backend/internal/util"
)

func newPathService(gateway AIGateway) *LearningPathService {
	kv := store.NewMemoryKV()
	profiles := NewProfileService(repository.NewProfileRepository(kv))
	return NewLearningPathService(repository.NewPathRepository(kv), profiles, gateway)
}

func TestCreateManualPath(t *testing.T) {
	ctx := context.Background()
	svc := newPathService(&stubGateway{})

	path := svc.CreateManualPath(ctx, "u-1", "Rust Basics", "learn rust", []string{"Ownership", "Traits", ""})

	if len(path.Phases) != 1 || path.Phases[0].Title != "Custom Curriculum" {
		t.Fatalf("unexpected phases: %+v", path.Phases)
	}
	// 空主题名被剔除
	if got := len(path.Phases[0].Topics); got != 2 {
		t.Fatalf("expected 2 topics, got %d", got)
	}
	for _, topic := range path.Phases[0].Topics {
		if topic.Status != model.TopicNotStarted {
			t.Fatalf("topic not in initial state: %+v", topic)
		}
		if topic.EstimatedMinutes != 45 || topic.DifficultyLevel != "intermediate" {
			t.Fatalf("manual topic defaults wrong: %+v", topic)
		}
	}
	if path.Progress != 0 {
		t.Fatalf("fresh path progress = %d", path.Progress)
	}

	// 新路径自动设为活动路径
	active := svc.ActivePath(ctx, "u-1")
	if active == nil || active.ID != path.ID {
		t.Fatalf("active path not set: %+v", active)
	}
}

func TestGenerateAIPathFillsDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newPathService(&stubGateway{
		generated: &model.GeneratedPath{
			Phases: []model.GeneratedPhase{
				{Title: "Foundations", Topics: []model.GeneratedTopic{
					{Title: "Intro"},
					{Title: "Deep Dive", EstimatedMinutes: 90, DifficultyLevel: "advanced"},
				}},
			},
		},
	})

	path, err := svc.GenerateAIPath(ctx, "u-1", "Data Engineer", "", PathOptions{})
	if err != nil {
		t.Fatal(err)
	}

	// 模型缺字段时用表单值补齐
	if path.Title != "Data Engineer" || path.GoalRole != "Data Engineer" {
		t.Fatalf("title/goal not backfilled: %+v", path)
	}
	intro := path.Phases[0].Topics[0]
	if intro.EstimatedMinutes != 30 || intro.DifficultyLevel != "beginner" {
		t.Fatalf("topic defaults not applied: %+v", intro)
	}
	deep := path.Phases[0].Topics[1]
	if deep.EstimatedMinutes != 90 || deep.DifficultyLevel != "advanced" {
		t.Fatalf("model values overwritten: %+v", deep)
	}
}

func TestGenerateAIPathPropagatesError(t *testing.T) {
	ctx := context.Background()
	svc := newPathService(&stubGateway{generateErr: errors.New("quota")})

	if _, err := svc.GenerateAIPath(ctx, "u-1", "X", "", PathOptions{}); err == nil {
		t.Fatal("expected error")
	}
	// 失败时不落任何新路径
	if got := len(svc.ListPaths(ctx, "u-1")); got != 0 {
		t.Fatalf("path persisted on failure: %d", got)
	}
}

func TestPathProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"empty path", 0, 0, 0},
		{"nothing done", 0, 4, 0},
		{"one of four", 1, 4, 25},
		{"two of three rounds", 2, 3, 67},
		{"all done", 4, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := &model.LearningPath{}
			var topics []model.LearningTopic
			for i := 0; i < tt.total; i++ {
				status := model.TopicNotStarted
				if i < tt.completed {
					status = model.TopicCompleted
				}
				topics = append(topics, model.LearningTopic{Status: status})
			}
			if tt.total > 0 {
				half := tt.total / 2
				path.Phases = []model.LearningPhase{
					{Topics: topics[:half]},
					{Topics: topics[half:]},
				}
			}
			if got := PathProgress(path); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextTopicScansDeclaredOrder(t *testing.T) {
	path := &model.LearningPath{
		Phases: []model.LearningPhase{
			{Title: "P1", Topics: []model.LearningTopic{
				{ID: "a", Status: model.TopicCompleted},
				{ID: "b", Status: model.TopicNeedsRevision},
			}},
			{Title: "P2", Topics: []model.LearningTopic{
				{ID: "c", Status: model.TopicNotStarted},
			}},
		},
	}

	phase, topic := NextTopic(path)
	if phase.Title != "P1" || topic.ID != "b" {
		t.Fatalf("got phase=%q topic=%q", phase.Title, topic.ID)
	}

	// 全部完成时返回nil
	path.Phases[0].Topics[1].Status = model.TopicCompleted
	path.Phases[1].Topics[0].Status = model.TopicCompleted
	if _, topic := NextTopic(path); topic != nil {
		t.Fatalf("expected nil, got %q", topic.ID)
	}
}

func TestMarkTopicCompletedRecomputesProgress(t *testing.T) {
	ctx := context.Background()
	svc := newPathService(&stubGateway{})

	path := svc.CreateManualPath(ctx, "u-1", "Go", "", []string{"A", "B", "C", "D"})
	topicID := path.Phases[0].Topics[0].ID

	if err := svc.MarkTopicCompleted(ctx, "u-1", topicID); err != nil {
		t.Fatal(err)
	}

	stored := svc.ActivePath(ctx, "u-1")
	if stored.Progress != 25 {
		t.Fatalf("progress = %d, want 25", stored.Progress)
	}
	done := stored.Phases[0].Topics[0]
	if done.Status != model.TopicCompleted || done.CompletedAt == 0 {
		t.Fatalf("topic not completed: %+v", done)
	}

	// completed 是终态
	if err := svc.MarkTopicNeedsRevision(ctx, "u-1", topicID); err != nil {
		t.Fatal(err)
	}
	stored = svc.ActivePath(ctx, "u-1")
	if stored.Phases[0].Topics[0].Status != model.TopicCompleted {
		t.Fatal("completed topic was demoted")
	}
}

func TestMarkUnknownTopic(t *testing.T) {
	ctx := context.Background()
	svc := newPathService(&stubGateway{})
	svc.CreateManualPath(ctx, "u-1", "Go", "", []string{"A"})

	if err := svc.MarkTopicCompleted(ctx, "u-1", "nope"); !errors.Is(err, util.ErrTopicNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestDeletePathRepointsActive(t *testing.T) {
	ctx := context.Background()
	svc := newPathService(&stubGateway{})

	first := svc.CreateManualPath(ctx, "u-1", "First", "", []string{"A"})
	second := svc.CreateManualPath(ctx, "u-1", "Second", "", []string{"B"})

	// second 是活动路径，删除后指针回到剩余的第一条
	if err := svc.DeletePath(ctx, "u-1", second.ID); err != nil {
		t.Fatal(err)
	}
	active := svc.ActivePath(ctx, "u-1")
	if active == nil || active.ID != first.ID {
		t.Fatalf("active pointer not moved: %+v", active)
	}

	if err := svc.DeletePath(ctx, "u-1", "missing"); !errors.Is(err, util.ErrPathNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestSelectActive(t *testing.T) {
	ctx := context.Background()
	svc := newPathService(&stubGateway{})

	first := svc.CreateManualPath(ctx, "u-1", "First", "", []string{"A"})
	svc.CreateManualPath(ctx, "u-1", "Second", "", []string{"B"})

	if err := svc.SelectActive(ctx, "u-1", first.ID); err != nil {
		t.Fatal(err)
	}
	if active := svc.ActivePath(ctx, "u-1"); active.ID != first.ID {
		t.Fatalf("got %q", active.ID)
	}

	if err := svc.SelectActive(ctx, "u-1", "missing"); !errors.Is(err, util.ErrPathNotFound) {
		t.Fatalf("got %v", err)
	}
}
