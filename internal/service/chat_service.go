package service

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
)

// ChatService 职业顾问主对话：历史只追加，每个用户一条会话流
type ChatService struct {
	MessageRepo *repository.MessageRepository
	Profiles    *ProfileService
	Gateway     AIGateway
}

func NewChatService(messageRepo *repository.MessageRepository, profiles *ProfileService, gateway AIGateway) *ChatService {
	return &ChatService{
		MessageRepo: messageRepo,
		Profiles:    profiles,
		Gateway:     gateway,
	}
}

func (s *ChatService) History(ctx context.Context, userID string) []model.ChatMessage {
	return s.MessageRepo.Get(ctx, userID)
}

// Send 追加用户消息，调用顾问模型，再追加助手回复。
// AI失败时用户消息仍然保留，错误内联返回给前端展示。
func (s *ChatService) Send(ctx context.Context, userID, content string) ([]model.ChatMessage, error) {
	messages := s.MessageRepo.Get(ctx, userID)
	messages = append(messages, model.NewChatMessage(model.RoleUser, content))
	s.MessageRepo.Save(ctx, userID, messages)

	profile := s.Profiles.Get(ctx, userID)
	reply, err := s.Gateway.Chat(ctx, messages, profile)
	if err != nil {
		return messages, err
	}

	messages = append(messages, model.NewChatMessage(model.RoleAssistant, reply))
	s.MessageRepo.Save(ctx, userID, messages)
	return messages, nil
}
