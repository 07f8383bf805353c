package repository

import (
	"context"
	"errors"
	"testing"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
	"sanvii_backend/internal/util"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryKV())

	if _, err := repo.FindByEmail(ctx, "a@b.com"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	repo.Create(ctx, &model.User{ID: "u-1", Name: "Ada", Email: "a@b.com"})
	repo.Create(ctx, &model.User{ID: "u-2", Name: "Lin", Email: "l@b.com"})

	u, err := repo.FindByEmail(ctx, "a@b.com")
	if err != nil || u.ID != "u-1" {
		t.Fatalf("got %v err=%v", u, err)
	}
	u, err = repo.FindByID(ctx, "u-2")
	if err != nil || u.Name != "Lin" {
		t.Fatalf("got %v err=%v", u, err)
	}
	if got := len(repo.All(ctx)); got != 2 {
		t.Fatalf("expected 2 users, got %d", got)
	}
}

func TestWriteFailureKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	repo := NewUserRepository(kv)

	repo.Create(ctx, &model.User{ID: "u-1", Email: "a@b.com"})

	// 写失败不panic不报错，读侧仍看到旧状态
	kv.FailWrites = true
	repo.Create(ctx, &model.User{ID: "u-2", Email: "b@b.com"})

	users := repo.All(ctx)
	if len(users) != 1 || users[0].ID != "u-1" {
		t.Fatalf("prior state lost: %v", users)
	}
}

func TestReadNeverFails(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()

	// 存入无法修复的坏数据
	kv.Set(ctx, keyUsers, "not json at all")

	repo := NewUserRepository(kv)
	if got := repo.All(ctx); len(got) != 0 {
		t.Fatalf("expected empty fallback, got %v", got)
	}
}

func TestTopicChatDefault(t *testing.T) {
	ctx := context.Background()
	repo := NewTopicChatRepository(store.NewMemoryKV())

	chat := repo.Get(ctx, "u-1", "t-1")
	if chat.TopicID != "t-1" || chat.IsLocked || chat.Mode != model.ModeLearning {
		t.Fatalf("unexpected default chat: %+v", chat)
	}
	if len(chat.Messages) != 0 || len(chat.Blockers) != 0 {
		t.Fatal("default chat not empty")
	}

	chat.IsLocked = true
	repo.Save(ctx, "u-1", chat)

	if got := repo.Get(ctx, "u-1", "t-1"); !got.IsLocked {
		t.Fatal("saved chat not round-tripped")
	}
	// 其他用户不受影响
	if got := repo.Get(ctx, "u-2", "t-1"); got.IsLocked {
		t.Fatal("chats leaked across users")
	}
}

func TestPathRepositoryActivePointer(t *testing.T) {
	ctx := context.Background()
	repo := NewPathRepository(store.NewMemoryKV())

	if got := repo.GetActivePathID(ctx, "u-1"); got != "" {
		t.Fatalf("expected empty pointer, got %q", got)
	}

	repo.SavePaths(ctx, "u-1", []model.LearningPath{{ID: "lp-1"}, {ID: "lp-2"}})
	repo.SetActivePathID(ctx, "u-1", "lp-2")

	if got := repo.GetActivePathID(ctx, "u-1"); got != "lp-2" {
		t.Fatalf("got %q", got)
	}
	if got := len(repo.GetPaths(ctx, "u-1")); got != 2 {
		t.Fatalf("got %d paths", got)
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(store.NewMemoryKV())

	repo.Put(ctx, "tok-1", "u-1")
	rec, ok := repo.Get(ctx, "tok-1")
	if !ok || rec.UserID != "u-1" {
		t.Fatalf("got %+v ok=%v", rec, ok)
	}

	repo.Delete(ctx, "tok-1")
	if _, ok := repo.Get(ctx, "tok-1"); ok {
		t.Fatal("session survived delete")
	}
}
