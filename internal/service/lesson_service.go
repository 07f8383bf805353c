package service

import (
	"context"
	"strings"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/util"
	"sanvii_backend/pkg/logger"

	"go.uber.org/zap"
)

const skillCheckQuestions = 3

// LessonService 主题级助教对话、理解障碍与技能检测。
// 技能检测是主题进入 completed 的唯一入口。
type LessonService struct {
	ChatRepo *repository.TopicChatRepository
	Paths    *LearningPathService
	Profiles *ProfileService
	Gateway  AIGateway
}

func NewLessonService(chatRepo *repository.TopicChatRepository, paths *LearningPathService, profiles *ProfileService, gateway AIGateway) *LessonService {
	return &LessonService{
		ChatRepo: chatRepo,
		Paths:    paths,
		Profiles: profiles,
		Gateway:  gateway,
	}
}

func (s *LessonService) Chat(ctx context.Context, userID, topicID string) *model.TopicChat {
	return s.ChatRepo.Get(ctx, userID, topicID)
}

// UnresolvedBlockerCount 统计用户所有主题对话里尚未解决的障碍数
func (s *LessonService) UnresolvedBlockerCount(ctx context.Context, userID string) int {
	count := 0
	for _, chat := range s.ChatRepo.GetAll(ctx, userID) {
		for _, b := range chat.Blockers {
			if !b.Resolved {
				count++
			}
		}
	}
	return count
}

// SendMessage 向助教发送一条消息。主题完成后对话锁定，拒绝写入。
// 助教回复中出现障碍标记时自动记录一条未解决障碍。
func (s *LessonService) SendMessage(ctx context.Context, userID, topicID, text string) (*model.TopicChat, error) {
	topic, err := s.Paths.FindTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	chat := s.ChatRepo.Get(ctx, userID, topicID)
	if chat.IsLocked {
		return nil, util.ErrTopicLocked
	}

	// 首条消息把主题从 not_started 推进到 in_progress
	if topic.Status == model.TopicNotStarted {
		if err := s.Paths.setTopicStatus(ctx, userID, topicID, model.TopicInProgress); err != nil {
			return nil, err
		}
		topic.Status = model.TopicInProgress
	}

	chat.Messages = append(chat.Messages, model.NewChatMessage(model.RoleUser, text))
	s.ChatRepo.Save(ctx, userID, chat)

	profile := s.Profiles.Get(ctx, userID)
	reply, err := s.Gateway.LessonTutorChat(ctx, *topic, chat.Messages, chat.UnresolvedBlockers(), profile, chat.Mode)
	if err != nil {
		// 用户消息已持久化，AI失败不回滚
		return chat, err
	}

	if strings.Contains(reply, markerBlocker) {
		chat.Blockers = append(chat.Blockers, model.LessonBlocker{
			ID:        model.NewID("blk"),
			TopicID:   topicID,
			Text:      blockerText(reply),
			CreatedAt: model.NowMillis(),
		})
		logger.Log.Info("tutor flagged a learning blocker",
			zap.String("userId", userID), zap.String("topicId", topicID))
	}

	chat.Messages = append(chat.Messages, model.NewChatMessage(model.RoleAssistant, reply))
	s.ChatRepo.Save(ctx, userID, chat)
	return chat, nil
}

// blockerText 取障碍标记之后、到行尾为止的助教描述
func blockerText(reply string) string {
	_, after, _ := strings.Cut(reply, markerBlocker)
	line, _, _ := strings.Cut(after, "\n")
	if line = strings.TrimSpace(line); line != "" {
		return line
	}
	return "Concept gap identified"
}

// AddBlocker 学员自报的理解障碍
func (s *LessonService) AddBlocker(ctx context.Context, userID, topicID, text string) (*model.TopicChat, error) {
	chat := s.ChatRepo.Get(ctx, userID, topicID)
	if chat.IsLocked {
		return nil, util.ErrTopicLocked
	}

	chat.Blockers = append(chat.Blockers, model.LessonBlocker{
		ID:        model.NewID("blk"),
		TopicID:   topicID,
		Text:      text,
		CreatedAt: model.NowMillis(),
	})
	s.ChatRepo.Save(ctx, userID, chat)
	return chat, nil
}

func (s *LessonService) ResolveBlocker(ctx context.Context, userID, topicID, blockerID string) (*model.TopicChat, error) {
	chat := s.ChatRepo.Get(ctx, userID, topicID)
	for i := range chat.Blockers {
		if chat.Blockers[i].ID == blockerID {
			chat.Blockers[i].Resolved = true
			chat.Blockers[i].ResolvedAt = model.NowMillis()
			s.ChatRepo.Save(ctx, userID, chat)
			return chat, nil
		}
	}
	return nil, util.ErrBlockerNotFound
}

// StartSkillCheck 生成检测题并切换到 skill-check 模式。
// 同一主题同时只允许一个未出结果的检测。
func (s *LessonService) StartSkillCheck(ctx context.Context, userID, topicID string) (*model.TopicChat, error) {
	topic, err := s.Paths.FindTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	chat := s.ChatRepo.Get(ctx, userID, topicID)
	if chat.IsLocked {
		return nil, util.ErrTopicLocked
	}
	if chat.SkillCheck != nil && chat.SkillCheck.Results == nil {
		return chat, nil
	}

	questions, err := s.Gateway.GenerateSkillCheck(ctx, *topic)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoActiveSkillCheck
	}
	if len(questions) > skillCheckQuestions {
		questions = questions[:skillCheckQuestions]
	}

	chat.SkillCheck = &model.SkillCheck{
		ID:        model.NewID("sc"),
		TopicID:   topicID,
		Questions: questions,
		CreatedAt: model.NowMillis(),
	}
	chat.Mode = model.ModeSkillCheck
	chat.Messages = append(chat.Messages, model.NewChatMessage(model.RoleAssistant,
		"Let's verify your understanding. "+questions[0]))
	s.ChatRepo.Save(ctx, userID, chat)
	return chat, nil
}

// SubmitAnswer 记录一条检测回答；答满后触发评估。
// 通过：主题 completed 且对话锁定。未通过：needs_revision，模式转 revision 继续补课。
func (s *LessonService) SubmitAnswer(ctx context.Context, userID, topicID, answer string) (*model.TopicChat, error) {
	topic, err := s.Paths.FindTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	chat := s.ChatRepo.Get(ctx, userID, topicID)
	if chat.IsLocked {
		return nil, util.ErrTopicLocked
	}
	if chat.SkillCheck == nil || chat.SkillCheck.Results != nil {
		return nil, util.ErrNoActiveSkillCheck
	}

	chat.Messages = append(chat.Messages, model.NewChatMessage(model.RoleUser, answer))
	chat.SkillCheck.Answers = append(chat.SkillCheck.Answers, answer)

	if len(chat.SkillCheck.Answers) < len(chat.SkillCheck.Questions) {
		next := chat.SkillCheck.Questions[len(chat.SkillCheck.Answers)]
		chat.Messages = append(chat.Messages, model.NewChatMessage(model.RoleAssistant, next))
		s.ChatRepo.Save(ctx, userID, chat)
		return chat, nil
	}

	s.ChatRepo.Save(ctx, userID, chat)
	return s.evaluate(ctx, userID, *topic, chat)
}

func (s *LessonService) evaluate(ctx context.Context, userID string, topic model.LearningTopic, chat *model.TopicChat) (*model.TopicChat, error) {
	result, err := s.Gateway.EvaluateSkillCheck(ctx, topic, chat.Messages)
	if err != nil {
		return chat, err
	}
	chat.SkillCheck.Results = result

	if result.Passed {
		if err := s.Paths.MarkTopicCompleted(ctx, userID, topic.ID); err != nil {
			return chat, err
		}
		chat.IsLocked = true
		chat.Messages = append(chat.Messages, model.NewChatMessage(model.RoleAssistant,
			"Congratulations, you passed! "+result.Feedback))
	} else {
		if err := s.Paths.MarkTopicNeedsRevision(ctx, userID, topic.ID); err != nil {
			return chat, err
		}
		chat.Mode = model.ModeRevision
		chat.Messages = append(chat.Messages, model.NewChatMessage(model.RoleAssistant,
			"Not quite there yet. "+result.Feedback))
	}

	logger.Log.Info("skill check evaluated",
		zap.String("userId", userID),
		zap.String("topicId", topic.ID),
		zap.Bool("passed", result.Passed),
		zap.Float64("score", result.Score))
	s.ChatRepo.Save(ctx, userID, chat)
	return chat, nil
}
