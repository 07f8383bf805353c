package service

import (
	"context"
	"errors"
	"testing"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/store"
)

func newChatService(gateway AIGateway) *ChatService {
	kv := store.NewMemoryKV()
	profiles := NewProfileService(repository.NewProfileRepository(kv))
	return NewChatService(repository.NewMessageRepository(kv), profiles, gateway)
}

func TestChatAppendsBothSides(t *testing.T) {
	ctx := context.Background()
	svc := newChatService(&stubGateway{chatReply: "Consider a portfolio project."})

	messages, err := svc.Send(ctx, "u-1", "How do I stand out?")
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages", len(messages))
	}
	if messages[1].Role != model.RoleAssistant || messages[1].Content == "" {
		t.Fatalf("assistant reply wrong: %+v", messages[1])
	}

	// 历史只追加
	messages, _ = svc.Send(ctx, "u-1", "Thanks!")
	if len(messages) != 4 {
		t.Fatalf("history not append-only: %d", len(messages))
	}
	if got := svc.History(ctx, "u-1"); len(got) != 4 {
		t.Fatalf("persisted %d messages", len(got))
	}
}

func TestChatKeepsUserMessageOnFailure(t *testing.T) {
	ctx := context.Background()
	svc := newChatService(&stubGateway{chatErr: errors.New("down")})

	messages, err := svc.Send(ctx, "u-1", "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(messages) != 1 || messages[0].Role != model.RoleUser {
		t.Fatalf("user message lost: %+v", messages)
	}
	if got := svc.History(ctx, "u-1"); len(got) != 1 {
		t.Fatalf("persisted %d messages", len(got))
	}
}
