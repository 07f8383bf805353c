package service

import (
	"context"
	"fmt"

	"sanvii_backend/internal/codec"
	"sanvii_backend/internal/config"
	"sanvii_backend/internal/model"
	"sanvii_backend/pkg/logger"
	"sanvii_backend/pkg/monitoring"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const fallbackReply = "I'm sorry, I couldn't process that."

// GeminiService AIGateway 的 Gemini 实现。
// 结构化调用都带显式schema，响应经过修复编解码器，
// 拿不到可用数据时降级为操作各自的空值，不会把解析错误抛给上层。
type GeminiService struct {
	client *genai.Client
	cfg    config.AIConfig
}

func NewGeminiService(cfg config.AIConfig) (*GeminiService, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiService{client: client, cfg: cfg}, nil
}

func (s *GeminiService) Client() *genai.Client { return s.client }

func (s *GeminiService) LiveModel() string { return s.cfg.LiveModel }

func (s *GeminiService) Voice() string { return s.cfg.Voice }

// toContents 把会话历史转成Gemini角色标记（assistant -> model）
func toContents(history []model.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.RoleModel
		if m.Role == model.RoleUser {
			role = genai.RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return contents
}

func systemContent(instruction string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: instruction}}}
}

func textContent(text string) []*genai.Content {
	return []*genai.Content{{Role: genai.RoleUser, Parts: []*genai.Part{{Text: text}}}}
}

// generate 所有文本/JSON调用的共同出口：统一超时与指标
func (s *GeminiService) generate(ctx context.Context, op, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, modelName, contents, cfg)
	monitoring.ObserveAICall(op, err == nil)
	if err != nil {
		logger.Log.Error("gemini call failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (s *GeminiService) Chat(ctx context.Context, history []model.ChatMessage, profile *model.CareerProfile) (string, error) {
	resp, err := s.generate(ctx, "chat", s.cfg.ChatModel, toContents(history), &genai.GenerateContentConfig{
		SystemInstruction: systemContent(advisorInstruction(profile)),
		Temperature:       genai.Ptr(float32(0.7)),
		MaxOutputTokens:   2048,
	})
	if err != nil {
		return "", err
	}
	if text := resp.Text(); text != "" {
		return text, nil
	}
	return fallbackReply, nil
}

func (s *GeminiService) FindJobs(ctx context.Context, profile *model.CareerProfile) (*model.JobSearchResult, error) {
	resp, err := s.generate(ctx, "find_jobs", s.cfg.ChatModel, textContent(jobSearchPrompt(profile)), &genai.GenerateContentConfig{
		SystemInstruction: systemContent(jobSearchInstruction),
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    jobListSchema,
	})
	if err != nil {
		return nil, err
	}

	result := &model.JobSearchResult{
		Jobs:      []model.JobMatch{},
		Grounding: []model.GroundingSource{},
	}
	codec.UnmarshalModelOutput(resp.Text(), &result.Jobs)

	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil {
				result.Grounding = append(result.Grounding, model.GroundingSource{
					URI:   chunk.Web.URI,
					Title: chunk.Web.Title,
				})
			}
		}
	}
	return result, nil
}

func (s *GeminiService) LessonTutorChat(ctx context.Context, topic model.LearningTopic, history []model.ChatMessage, blockers []model.LessonBlocker, profile *model.CareerProfile, mode model.ChatMode) (string, error) {
	resp, err := s.generate(ctx, "lesson_tutor", s.cfg.FlashModel, toContents(history), &genai.GenerateContentConfig{
		SystemInstruction: systemContent(tutorInstruction(topic, blockers, profile, mode)),
		Temperature:       genai.Ptr(float32(0.7)),
	})
	if err != nil {
		return "", err
	}
	if text := resp.Text(); text != "" {
		return text, nil
	}
	return "I'm here to help with the current module.", nil
}

func (s *GeminiService) GenerateSkillCheck(ctx context.Context, topic model.LearningTopic) ([]string, error) {
	prompt := fmt.Sprintf("Create a skill check for: %q. Concept: %s.", topic.Title, topic.Description)
	resp, err := s.generate(ctx, "skill_check", s.cfg.FlashModel, textContent(prompt), &genai.GenerateContentConfig{
		SystemInstruction: systemContent("Generate exactly 3 challenging multiple-choice or short answer validation questions. Format clearly."),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    skillCheckSchema,
	})
	if err != nil {
		return nil, err
	}

	out := struct {
		Questions []string `json:"questions"`
	}{Questions: []string{}}
	codec.UnmarshalModelOutput(resp.Text(), &out)
	return out.Questions, nil
}

func (s *GeminiService) EvaluateSkillCheck(ctx context.Context, topic model.LearningTopic, history []model.ChatMessage) (*model.SkillCheckResult, error) {
	prompt := fmt.Sprintf("Evaluate the user's mastery of %q based on our session history.", topic.Title)
	contents := append(toContents(history), textContent(prompt)...)

	resp, err := s.generate(ctx, "skill_eval", s.cfg.ChatModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: systemContent(`Analyze the conversation.
Determine if the student truly understands the concept or just repeated info.
Return JSON structure: { passed: boolean, score: number, feedback: string, weakConcepts: string[], actionableAdvice: string }`),
		ResponseMIMEType: "application/json",
		ResponseSchema:   skillEvalSchema,
	})
	if err != nil {
		return nil, err
	}

	result := &model.SkillCheckResult{
		Feedback:     "Evaluation unavailable.",
		WeakConcepts: []string{},
	}
	codec.UnmarshalModelOutput(resp.Text(), result)
	return result, nil
}

func (s *GeminiService) LearningSuggestions(ctx context.Context, profile *model.CareerProfile) ([]model.PathSuggestion, error) {
	resp, err := s.generate(ctx, "suggestions", s.cfg.FlashModel, textContent(suggestionsPrompt(profile)), &genai.GenerateContentConfig{
		SystemInstruction: systemContent("You are an AI Career Strategist. Provide ultra-relevant, growth-oriented learning path suggestions in JSON format."),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    suggestionsSchema,
	})
	if err != nil {
		return nil, err
	}

	suggestions := []model.PathSuggestion{}
	codec.UnmarshalModelOutput(resp.Text(), &suggestions)
	return suggestions, nil
}

func (s *GeminiService) GenerateLearningPath(ctx context.Context, goal, description string, profile *model.CareerProfile, opts PathOptions) (*model.GeneratedPath, error) {
	resp, err := s.generate(ctx, "curriculum", s.cfg.FlashModel, textContent(curriculumPrompt(goal, description, profile, opts)), &genai.GenerateContentConfig{
		SystemInstruction: systemContent("You are a Master Curriculum Architect. Generate a learning roadmap in JSON."),
		MaxOutputTokens:   8192,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    curriculumSchema,
	})
	if err != nil {
		return nil, err
	}

	generated := &model.GeneratedPath{}
	codec.UnmarshalModelOutput(resp.Text(), generated)
	return generated, nil
}

func (s *GeminiService) AnalyzeResume(ctx context.Context, resumeText string) (*model.ResumeAnalysis, error) {
	resp, err := s.generate(ctx, "resume", s.cfg.FlashModel, textContent("Analyze this resume deeply: "+resumeText), &genai.GenerateContentConfig{
		SystemInstruction: systemContent(`You are an expert HR recruiter and career strategist.
Perform a deep analysis. Extract skills, roles, keywords (for ATS), specific improvement areas,
and high-impact actionable recommendations for career growth.`),
		ResponseMIMEType: "application/json",
		ResponseSchema:   resumeSchema,
	})
	if err != nil {
		return nil, err
	}

	analysis := model.EmptyResumeAnalysis()
	codec.UnmarshalModelOutput(resp.Text(), &analysis)
	return &analysis, nil
}
