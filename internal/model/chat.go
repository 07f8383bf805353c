package model

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// ChatMessage 创建后不可变，会话内只追加
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"`
}

func NewChatMessage(role MessageRole, content string) ChatMessage {
	return ChatMessage{
		ID:        NewID("m"),
		Role:      role,
		Content:   content,
		Timestamp: NowMillis(),
	}
}
