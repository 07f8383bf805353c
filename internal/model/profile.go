package model

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

type LearningStyle string

const (
	StyleSelfPaced LearningStyle = "self-paced"
	StyleMentorLed LearningStyle = "mentor-led"
	StyleAcademic  LearningStyle = "academic"
	StyleHandsOn   LearningStyle = "hands-on"
)

// swagger:model CareerProfile
type CareerProfile struct {
	ID                string        `json:"id"`
	UserID            string        `json:"userId"`
	EducationDegree   string        `json:"education_degree,omitempty"`
	EducationField    string        `json:"education_field,omitempty"`
	GraduationYear    int           `json:"graduation_year,omitempty"`
	EmploymentStatus  string        `json:"employment_status,omitempty"`
	YearsOfExperience int           `json:"years_of_experience,omitempty"`
	JobRole           string        `json:"job_role,omitempty"`
	Skills            []Skill       `json:"skills"`
	TargetRoles       []string      `json:"target_roles"` // 按优先级排序
	ShortTermGoal     string        `json:"short_term_goal,omitempty"`
	LongTermGoal      string        `json:"long_term_goal,omitempty"`
	OnboardingDone    bool          `json:"onboarding_completed"`
	LearningStyle     LearningStyle `json:"learning_style,omitempty"`
}

// DefaultProfile 缺省空档案：无技能，角色为 Professional，未完成引导
func DefaultProfile(userID string) *CareerProfile {
	return &CareerProfile{
		ID:          NewID("cp"),
		UserID:      userID,
		JobRole:     "Professional",
		Skills:      []Skill{},
		TargetRoles: []string{},
	}
}

// TargetRole 首选目标角色，没有则退回默认
func (p *CareerProfile) TargetRole() string {
	if len(p.TargetRoles) > 0 {
		return p.TargetRoles[0]
	}
	return "Software Engineer"
}

func (p *CareerProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}
