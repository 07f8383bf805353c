package model

type TopicStatus string

const (
	TopicNotStarted    TopicStatus = "not_started"
	TopicInProgress    TopicStatus = "in_progress"
	TopicCompleted     TopicStatus = "completed"
	TopicNeedsRevision TopicStatus = "needs_revision"
	TopicLocked        TopicStatus = "locked"
)

type PathStatus string

const (
	PathActive    PathStatus = "active"
	PathCompleted PathStatus = "completed"
	PathArchived  PathStatus = "archived"
)

type LearningTopic struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Status           TopicStatus `json:"status"`
	EstimatedMinutes int         `json:"estimated_minutes"`
	DifficultyLevel  string      `json:"difficulty_level"`
	Prerequisites    []string    `json:"prerequisites,omitempty"` // 前置主题ID
	IsRevision       bool        `json:"isRevision,omitempty"`
	OriginalTopicID  string      `json:"originalTopicId,omitempty"`
	CompletedAt      int64       `json:"completedAt,omitempty"`
}

type LearningPhase struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Topics []LearningTopic `json:"topics"`
}

// swagger:model LearningPath
type LearningPath struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	GoalRole    string          `json:"goal_role"`
	Phases      []LearningPhase `json:"phases"`
	Status      PathStatus      `json:"status"`
	Progress    int             `json:"progress"` // 0-100，整个路径的完成百分比
}

// GeneratedPath AI生成课程的结构化输出
type GeneratedPath struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	GoalRole    string           `json:"goal_role"`
	Phases      []GeneratedPhase `json:"phases"`
}

type GeneratedPhase struct {
	Title  string           `json:"title"`
	Topics []GeneratedTopic `json:"topics"`
}

type GeneratedTopic struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	DifficultyLevel  string `json:"difficulty_level"`
}

// PathSuggestion 推荐的学习路径标题与说明
type PathSuggestion struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Reasoning     string `json:"reasoning"`
	EstimatedTime string `json:"estimatedTime"`
}
