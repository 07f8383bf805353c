package service

import (
	"context"
	"math"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/util"
	"sanvii_backend/pkg/logger"

	"go.uber.org/zap"
)

// LearningPathService 学习路径与主题生命周期：
// not_started -> in_progress -> completed / needs_revision。
// completed 为终态，只能通过技能检测通过进入。
type LearningPathService struct {
	PathRepo *repository.PathRepository
	Gateway  AIGateway
	Profiles *ProfileService
}

func NewLearningPathService(pathRepo *repository.PathRepository, profiles *ProfileService, gateway AIGateway) *LearningPathService {
	return &LearningPathService{
		PathRepo: pathRepo,
		Gateway:  gateway,
		Profiles: profiles,
	}
}

// PathProgress 整条路径（所有阶段）的完成百分比，四舍五入；空路径为0
func PathProgress(path *model.LearningPath) int {
	total, completed := 0, 0
	for _, ph := range path.Phases {
		for _, t := range ph.Topics {
			total++
			if t.Status == model.TopicCompleted {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// NextTopic 按声明顺序扫描阶段和主题，返回第一个未完成的主题。
// 纯函数，不依赖任何持久化游标；全部完成时返回 nil。
func NextTopic(path *model.LearningPath) (*model.LearningPhase, *model.LearningTopic) {
	for i := range path.Phases {
		ph := &path.Phases[i]
		for j := range ph.Topics {
			if ph.Topics[j].Status != model.TopicCompleted {
				return ph, &ph.Topics[j]
			}
		}
	}
	return nil, nil
}

func (s *LearningPathService) ListPaths(ctx context.Context, userID string) []model.LearningPath {
	return s.PathRepo.GetPaths(ctx, userID)
}

func (s *LearningPathService) ActivePath(ctx context.Context, userID string) *model.LearningPath {
	paths := s.PathRepo.GetPaths(ctx, userID)
	if len(paths) == 0 {
		return nil
	}

	activeID := s.PathRepo.GetActivePathID(ctx, userID)
	for i := range paths {
		if paths[i].ID == activeID {
			return &paths[i]
		}
	}

	// 指针失效时退回第一条并重新指向
	s.PathRepo.SetActivePathID(ctx, userID, paths[0].ID)
	return &paths[0]
}

func (s *LearningPathService) SelectActive(ctx context.Context, userID, pathID string) error {
	for _, p := range s.PathRepo.GetPaths(ctx, userID) {
		if p.ID == pathID {
			s.PathRepo.SetActivePathID(ctx, userID, pathID)
			return nil
		}
	}
	return util.ErrPathNotFound
}

func (s *LearningPathService) DeletePath(ctx context.Context, userID, pathID string) error {
	paths := s.PathRepo.GetPaths(ctx, userID)
	kept := make([]model.LearningPath, 0, len(paths))
	found := false
	for _, p := range paths {
		if p.ID == pathID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return util.ErrPathNotFound
	}

	s.PathRepo.SavePaths(ctx, userID, kept)
	if s.PathRepo.GetActivePathID(ctx, userID) == pathID && len(kept) > 0 {
		s.PathRepo.SetActivePathID(ctx, userID, kept[0].ID)
	}
	return nil
}

// CreateManualPath 手动课程：单阶段 Custom Curriculum，45分钟中级主题
func (s *LearningPathService) CreateManualPath(ctx context.Context, userID, title, description string, topics []string) *model.LearningPath {
	phase := model.LearningPhase{
		ID:    model.NewID("ph"),
		Title: "Custom Curriculum",
	}
	for _, t := range topics {
		if t == "" {
			continue
		}
		phase.Topics = append(phase.Topics, model.LearningTopic{
			ID:               model.NewID("t"),
			Title:            t,
			Description:      "A custom topic you defined.",
			Status:           model.TopicNotStarted,
			EstimatedMinutes: 45,
			DifficultyLevel:  "intermediate",
		})
	}

	path := model.LearningPath{
		ID:          model.NewID("lp"),
		Title:       title,
		Description: description,
		GoalRole:    title,
		Phases:      []model.LearningPhase{phase},
		Status:      model.PathActive,
	}
	s.appendAndActivate(ctx, userID, path)
	return &path
}

// GenerateAIPath 调用课程生成，装配为新路径并设为活动路径。
// 模型输出缺字段时用表单值和默认值补齐。
func (s *LearningPathService) GenerateAIPath(ctx context.Context, userID, title, description string, opts PathOptions) (*model.LearningPath, error) {
	profile := s.Profiles.Get(ctx, userID)
	generated, err := s.Gateway.GenerateLearningPath(ctx, title, description, profile, opts)
	if err != nil {
		return nil, err
	}

	path := model.LearningPath{
		ID:          model.NewID("lp"),
		Title:       generated.Title,
		Description: generated.Description,
		GoalRole:    generated.GoalRole,
		Status:      model.PathActive,
	}
	if path.Title == "" {
		path.Title = title
	}
	if path.Description == "" {
		path.Description = description
		if path.Description == "" {
			path.Description = "Personalized path for " + title
		}
	}
	if path.GoalRole == "" {
		path.GoalRole = title
	}

	for _, gp := range generated.Phases {
		phase := model.LearningPhase{
			ID:    model.NewID("ph"),
			Title: gp.Title,
		}
		for _, gt := range gp.Topics {
			topic := model.LearningTopic{
				ID:               model.NewID("t"),
				Title:            gt.Title,
				Description:      gt.Description,
				Status:           model.TopicNotStarted,
				EstimatedMinutes: gt.EstimatedMinutes,
				DifficultyLevel:  gt.DifficultyLevel,
			}
			if topic.EstimatedMinutes == 0 {
				topic.EstimatedMinutes = 30
			}
			if topic.DifficultyLevel == "" {
				topic.DifficultyLevel = "beginner"
			}
			phase.Topics = append(phase.Topics, topic)
		}
		path.Phases = append(path.Phases, phase)
	}

	s.appendAndActivate(ctx, userID, path)
	return &path, nil
}

func (s *LearningPathService) appendAndActivate(ctx context.Context, userID string, path model.LearningPath) {
	paths := s.PathRepo.GetPaths(ctx, userID)
	paths = append(paths, path)
	s.PathRepo.SavePaths(ctx, userID, paths)
	s.PathRepo.SetActivePathID(ctx, userID, path.ID)
}

func (s *LearningPathService) Suggestions(ctx context.Context, userID string) ([]model.PathSuggestion, error) {
	profile := s.Profiles.Get(ctx, userID)
	return s.Gateway.LearningSuggestions(ctx, profile)
}

// MarkTopicCompleted 仅由技能检测通过触发：写完成时间并重算进度。
// 对话锁定由 LessonService 同步执行
func (s *LearningPathService) MarkTopicCompleted(ctx context.Context, userID, topicID string) error {
	return s.setTopicStatus(ctx, userID, topicID, model.TopicCompleted)
}

// MarkTopicNeedsRevision 技能检测未通过：不锁定对话，允许继续补课
func (s *LearningPathService) MarkTopicNeedsRevision(ctx context.Context, userID, topicID string) error {
	return s.setTopicStatus(ctx, userID, topicID, model.TopicNeedsRevision)
}

func (s *LearningPathService) setTopicStatus(ctx context.Context, userID, topicID string, status model.TopicStatus) error {
	paths := s.PathRepo.GetPaths(ctx, userID)
	for pi := range paths {
		for phi := range paths[pi].Phases {
			for ti := range paths[pi].Phases[phi].Topics {
				topic := &paths[pi].Phases[phi].Topics[ti]
				if topic.ID != topicID {
					continue
				}
				// completed 为终态，不允许回退
				if topic.Status == model.TopicCompleted {
					logger.Log.Warn("ignoring status change on completed topic",
						zap.String("topicId", topicID), zap.String("to", string(status)))
					return nil
				}

				topic.Status = status
				if status == model.TopicCompleted {
					topic.CompletedAt = model.NowMillis()
				}
				// 每次状态变化都重算整条路径的进度并随路径持久化
				paths[pi].Progress = PathProgress(&paths[pi])
				s.PathRepo.SavePaths(ctx, userID, paths)
				return nil
			}
		}
	}
	return util.ErrTopicNotFound
}

// FindTopic 在用户任意路径中按ID定位主题
func (s *LearningPathService) FindTopic(ctx context.Context, userID, topicID string) (*model.LearningTopic, error) {
	for _, p := range s.PathRepo.GetPaths(ctx, userID) {
		for _, ph := range p.Phases {
			for _, t := range ph.Topics {
				if t.ID == topicID {
					topic := t
					return &topic, nil
				}
			}
		}
	}
	return nil, util.ErrTopicNotFound
}
