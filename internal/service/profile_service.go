package service

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

// Get 档案缺失时返回隐式默认档案（无技能，角色 Professional，引导未完成）
func (s *ProfileService) Get(ctx context.Context, userID string) *model.CareerProfile {
	if p := s.ProfileRepo.Get(ctx, userID); p != nil {
		return p
	}
	return model.DefaultProfile(userID)
}

// OnboardingUpdate 向导各步骤的增量更新；零值字段不覆盖已有数据
type OnboardingUpdate struct {
	EducationDegree   string              `json:"education_degree"`
	EducationField    string              `json:"education_field"`
	GraduationYear    int                 `json:"graduation_year"`
	EmploymentStatus  string              `json:"employment_status"`
	YearsOfExperience int                 `json:"years_of_experience"`
	JobRole           string              `json:"job_role"`
	Skills            []model.Skill       `json:"skills"`
	TargetRoles       []string            `json:"target_roles"`
	ShortTermGoal     string              `json:"short_term_goal"`
	LongTermGoal      string              `json:"long_term_goal"`
	LearningStyle     model.LearningStyle `json:"learning_style"`
}

func (s *ProfileService) ApplyStep(ctx context.Context, userID string, update OnboardingUpdate) *model.CareerProfile {
	p := s.Get(ctx, userID)

	if update.EducationDegree != "" {
		p.EducationDegree = update.EducationDegree
	}
	if update.EducationField != "" {
		p.EducationField = update.EducationField
	}
	if update.GraduationYear != 0 {
		p.GraduationYear = update.GraduationYear
	}
	if update.EmploymentStatus != "" {
		p.EmploymentStatus = update.EmploymentStatus
	}
	if update.YearsOfExperience != 0 {
		p.YearsOfExperience = update.YearsOfExperience
	}
	if update.JobRole != "" {
		p.JobRole = update.JobRole
	}
	if update.Skills != nil {
		p.Skills = dedupeSkills(update.Skills)
	}
	if update.TargetRoles != nil {
		p.TargetRoles = update.TargetRoles
	}
	if update.ShortTermGoal != "" {
		p.ShortTermGoal = update.ShortTermGoal
	}
	if update.LongTermGoal != "" {
		p.LongTermGoal = update.LongTermGoal
	}
	if update.LearningStyle != "" {
		p.LearningStyle = update.LearningStyle
	}

	s.ProfileRepo.Save(ctx, p)
	return p
}

// CompleteOnboarding 只有所有向导步骤确认后才置位完成标志
func (s *ProfileService) CompleteOnboarding(ctx context.Context, userID string) *model.CareerProfile {
	p := s.Get(ctx, userID)
	p.OnboardingDone = true
	s.ProfileRepo.Save(ctx, p)
	return p
}

// dedupeSkills 技能按名称唯一，后出现的等级覆盖先出现的
func dedupeSkills(skills []model.Skill) []model.Skill {
	seen := make(map[string]int, len(skills))
	out := make([]model.Skill, 0, len(skills))
	for _, sk := range skills {
		if idx, ok := seen[sk.Name]; ok {
			out[idx] = sk
			continue
		}
		seen[sk.Name] = len(out)
		out = append(out, sk)
	}
	return out
}
