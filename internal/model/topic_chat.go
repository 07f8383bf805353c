package model

type ChatMode string

const (
	ModeLearning   ChatMode = "learning"
	ModeRevision   ChatMode = "revision"
	ModeSkillCheck ChatMode = "skill-check"
)

// LessonBlocker 课程对话中发现或自报的理解障碍
type LessonBlocker struct {
	ID         string `json:"id"`
	TopicID    string `json:"topicId"`
	Text       string `json:"text"`
	Resolved   bool   `json:"resolved"`
	CreatedAt  int64  `json:"createdAt"`
	ResolvedAt int64  `json:"resolvedAt,omitempty"`
}

type SkillCheckResult struct {
	Passed           bool     `json:"passed"`
	Score            float64  `json:"score"`
	Feedback         string   `json:"feedback"`
	WeakConcepts     []string `json:"weakConcepts"`
	ActionableAdvice string   `json:"actionableAdvice"`
}

// SkillCheck 每个主题对话同时最多一个
type SkillCheck struct {
	ID        string            `json:"id"`
	TopicID   string            `json:"topicId"`
	Questions []string          `json:"questions"`
	Answers   []string          `json:"userAnswers,omitempty"`
	Results   *SkillCheckResult `json:"results,omitempty"`
	CreatedAt int64             `json:"createdAt"`
}

// TopicChat 主题级对话状态，按主题ID归属于用户
type TopicChat struct {
	TopicID    string          `json:"topicId"`
	Messages   []ChatMessage   `json:"messages"`
	Blockers   []LessonBlocker `json:"blockers"`
	IsLocked   bool            `json:"isLocked"` // 主题完成后锁定，不再接受编辑
	Mode       ChatMode        `json:"mode"`
	SkillCheck *SkillCheck     `json:"skillCheck,omitempty"`
}

func NewTopicChat(topicID string) *TopicChat {
	return &TopicChat{
		TopicID:  topicID,
		Messages: []ChatMessage{},
		Blockers: []LessonBlocker{},
		Mode:     ModeLearning,
	}
}

// UnresolvedBlockers 仍未解决的障碍列表
func (tc *TopicChat) UnresolvedBlockers() []LessonBlocker {
	out := make([]LessonBlocker, 0, len(tc.Blockers))
	for _, b := range tc.Blockers {
		if !b.Resolved {
			out = append(out, b)
		}
	}
	return out
}
