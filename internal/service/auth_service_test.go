package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sanvii_backend/internal/config"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/store"
	"sanvii_backend/internal/util"
)

func newAuthService() (*AuthService, *repository.ProfileRepository) {
	kv := store.NewMemoryKV()
	profileRepo := repository.NewProfileRepository(kv)
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	return NewAuthService(repository.NewUserRepository(kv), profileRepo, repository.NewSessionRepository(kv), cfg), profileRepo
}

func TestRegisterCreatesProfile(t *testing.T) {
	ctx := context.Background()
	auth, profileRepo := newAuthService()

	user, err := auth.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID == "" || user.PasswordHash == "password123" {
		t.Fatalf("credentials stored in plaintext: %+v", user)
	}
	if user.Avatar == "" {
		t.Fatal("avatar not assigned")
	}
	if user.Sanitized().PasswordHash != "" {
		t.Fatal("sanitized user leaks hash")
	}

	profile := profileRepo.Get(ctx, user.ID)
	if profile == nil || profile.OnboardingDone {
		t.Fatalf("default profile wrong: %+v", profile)
	}

	if _, err := auth.Register(ctx, "Ada2", "ada@example.com", "password456"); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("got %v", err)
	}
}

func TestLoginAndSession(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService()
	auth.Register(ctx, "Ada", "ada@example.com", "password123")

	token, user, err := auth.Login(ctx, "ada@example.com", "password123")
	if err != nil || token == "" {
		t.Fatalf("login failed: %v", err)
	}

	restored, err := auth.RestoreSession(ctx, token)
	if err != nil || restored.ID != user.ID {
		t.Fatalf("restore failed: %v", err)
	}

	// 登出后会话立即失效
	auth.Logout(ctx, token)
	if _, err := auth.RestoreSession(ctx, token); err == nil {
		t.Fatal("session survived logout")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService()
	auth.Register(ctx, "Ada", "ada@example.com", "password123")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ada@example.com", "nope"},
		{"unknown email", "ghost@example.com", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := auth.Login(ctx, tt.email, tt.password); !errors.Is(err, util.ErrInvalidCredentials) {
				t.Fatalf("got %v", err)
			}
		})
	}
}
