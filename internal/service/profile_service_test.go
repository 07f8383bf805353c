package service

import (
	"context"
	"testing"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/store"
)

func TestProfileImplicitDefault(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(repository.NewProfileRepository(store.NewMemoryKV()))

	p := svc.Get(ctx, "u-1")
	if p.JobRole != "Professional" || p.OnboardingDone {
		t.Fatalf("unexpected default: %+v", p)
	}
	if p.TargetRole() != "Software Engineer" {
		t.Fatalf("fallback target role = %q", p.TargetRole())
	}
}

func TestApplyStepMergesNonZero(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(repository.NewProfileRepository(store.NewMemoryKV()))

	svc.ApplyStep(ctx, "u-1", OnboardingUpdate{
		JobRole: "Junior Developer",
		Skills: []model.Skill{
			{Name: "Go", Level: model.SkillBeginner},
			{Name: "SQL", Level: model.SkillIntermediate},
			{Name: "Go", Level: model.SkillAdvanced}, // 重名，后者胜出
		},
	})
	p := svc.ApplyStep(ctx, "u-1", OnboardingUpdate{
		TargetRoles: []string{"Backend Engineer"},
	})

	// 第二步没带的字段不被清空
	if p.JobRole != "Junior Developer" {
		t.Fatalf("job role lost: %q", p.JobRole)
	}
	if len(p.Skills) != 2 {
		t.Fatalf("skills not deduped: %+v", p.Skills)
	}
	for _, s := range p.Skills {
		if s.Name == "Go" && s.Level != model.SkillAdvanced {
			t.Fatalf("later skill level did not win: %+v", s)
		}
	}
	if p.TargetRole() != "Backend Engineer" {
		t.Fatalf("target role = %q", p.TargetRole())
	}
	if p.OnboardingDone {
		t.Fatal("onboarding flag set early")
	}
}

func TestCompleteOnboarding(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(repository.NewProfileRepository(store.NewMemoryKV()))

	if p := svc.CompleteOnboarding(ctx, "u-1"); !p.OnboardingDone {
		t.Fatal("flag not set")
	}
	// 重新读取确认持久化
	if p := svc.Get(ctx, "u-1"); !p.OnboardingDone {
		t.Fatal("flag not persisted")
	}
}
