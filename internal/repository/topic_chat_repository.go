package repository

import (
	"context"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/store"
)

type TopicChatRepository struct {
	kv store.KV
}

func NewTopicChatRepository(kv store.KV) *TopicChatRepository {
	return &TopicChatRepository{kv: kv}
}

// GetAll 用户的全部主题对话，topicID -> TopicChat
func (r *TopicChatRepository) GetAll(ctx context.Context, userID string) map[string]*model.TopicChat {
	all := loadTable(ctx, r.kv, keyTopicChats, map[string]map[string]*model.TopicChat{})
	if chats, ok := all[userID]; ok {
		return chats
	}
	return map[string]*model.TopicChat{}
}

func (r *TopicChatRepository) Get(ctx context.Context, userID, topicID string) *model.TopicChat {
	if chat, ok := r.GetAll(ctx, userID)[topicID]; ok {
		return chat
	}
	return model.NewTopicChat(topicID)
}

func (r *TopicChatRepository) Save(ctx context.Context, userID string, chat *model.TopicChat) {
	all := loadTable(ctx, r.kv, keyTopicChats, map[string]map[string]*model.TopicChat{})
	if all[userID] == nil {
		all[userID] = map[string]*model.TopicChat{}
	}
	all[userID][chat.TopicID] = chat
	saveTable(ctx, r.kv, keyTopicChats, all)
}
