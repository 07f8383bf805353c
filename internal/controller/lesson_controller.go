package controller

import (
	"errors"

	"sanvii_backend/internal/service"
	"sanvii_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

func lessonError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTopicNotFound), errors.Is(err, util.ErrBlockerNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrTopicLocked):
		util.Error(ctx, 409, "topic chat is locked")
	case errors.Is(err, util.ErrNoActiveSkillCheck):
		util.BadRequest(ctx, "no active skill check")
	default:
		util.Error(ctx, 502, "tutor unavailable")
	}
}

// GetChat godoc
// @Summary 主题对话状态
// @Description 返回消息、障碍、模式与技能检测；首次访问返回空对话
// @Tags 课程学习
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "主题ID"
// @Success 200 {object} util.Response{data=model.TopicChat} "成功"
// @Router /api/topics/{topicId}/chat [get]
func (c *LessonController) GetChat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.LessonService.Chat(ctx.Request.Context(), claims.UserID, ctx.Param("topicId")))
}

// LessonMessageRequest 助教消息请求
type LessonMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage godoc
// @Summary 向助教发送消息
// @Description 主题完成后对话锁定，返回409；首条消息把主题推进到进行中
// @Tags 课程学习
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "主题ID"
// @Param   body body LessonMessageRequest true "消息内容"
// @Success 200 {object} util.Response{data=model.TopicChat} "成功"
// @Failure 409 {object} util.Response "对话已锁定"
// @Router /api/topics/{topicId}/chat [post]
func (c *LessonController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LessonMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chat, err := c.LessonService.SendMessage(ctx.Request.Context(), claims.UserID, ctx.Param("topicId"), req.Content)
	if err != nil {
		lessonError(ctx, err)
		return
	}
	util.Success(ctx, chat)
}

// BlockerRequest 自报障碍请求
type BlockerRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddBlocker godoc
// @Summary 记录理解障碍
// @Tags 课程学习
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "主题ID"
// @Param   body body BlockerRequest true "障碍描述"
// @Success 200 {object} util.Response{data=model.TopicChat} "成功"
// @Router /api/topics/{topicId}/blockers [post]
func (c *LessonController) AddBlocker(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req BlockerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chat, err := c.LessonService.AddBlocker(ctx.Request.Context(), claims.UserID, ctx.Param("topicId"), req.Text)
	if err != nil {
		lessonError(ctx, err)
		return
	}
	util.Success(ctx, chat)
}

// ResolveBlocker godoc
// @Summary 标记障碍已解决
// @Tags 课程学习
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "主题ID"
// @Param   blockerId path string true "障碍ID"
// @Success 200 {object} util.Response{data=model.TopicChat} "成功"
// @Failure 404 {object} util.Response "障碍不存在"
// @Router /api/topics/{topicId}/blockers/{blockerId}/resolve [post]
func (c *LessonController) ResolveBlocker(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	chat, err := c.LessonService.ResolveBlocker(ctx.Request.Context(), claims.UserID, ctx.Param("topicId"), ctx.Param("blockerId"))
	if err != nil {
		lessonError(ctx, err)
		return
	}
	util.Success(ctx, chat)
}

// StartSkillCheck godoc
// @Summary 开始技能检测
// @Description 生成检测题并切换到检测模式；已有未完成检测时幂等返回
// @Tags 课程学习
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "主题ID"
// @Success 200 {object} util.Response{data=model.TopicChat} "成功"
// @Failure 409 {object} util.Response "对话已锁定"
// @Router /api/topics/{topicId}/skill-check [post]
func (c *LessonController) StartSkillCheck(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	chat, err := c.LessonService.StartSkillCheck(ctx.Request.Context(), claims.UserID, ctx.Param("topicId"))
	if err != nil {
		lessonError(ctx, err)
		return
	}
	util.Success(ctx, chat)
}

// SkillCheckAnswerRequest 检测回答
type SkillCheckAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// SubmitAnswer godoc
// @Summary 提交技能检测回答
// @Description 答满全部题目后自动评估：通过则主题完成并锁定对话，未通过转入复习模式
// @Tags 课程学习
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "主题ID"
// @Param   body body SkillCheckAnswerRequest true "回答内容"
// @Success 200 {object} util.Response{data=model.TopicChat} "成功"
// @Failure 400 {object} util.Response "没有进行中的检测"
// @Router /api/topics/{topicId}/skill-check/answer [post]
func (c *LessonController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SkillCheckAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chat, err := c.LessonService.SubmitAnswer(ctx.Request.Context(), claims.UserID, ctx.Param("topicId"), req.Answer)
	if err != nil {
		lessonError(ctx, err)
		return
	}
	util.Success(ctx, chat)
}
