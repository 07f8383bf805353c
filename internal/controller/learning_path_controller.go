package controller

import (
	"errors"

	"sanvii_backend/internal/service"
	"sanvii_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	PathService *service.LearningPathService
}

func NewLearningPathController(pathService *service.LearningPathService) *LearningPathController {
	return &LearningPathController{PathService: pathService}
}

// List godoc
// @Summary 学习路径列表
// @Tags 学习路径
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.LearningPath} "成功"
// @Router /api/paths [get]
func (c *LearningPathController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	paths := c.PathService.ListPaths(ctx.Request.Context(), claims.UserID)
	active := c.PathService.ActivePath(ctx.Request.Context(), claims.UserID)
	activeID := ""
	if active != nil {
		activeID = active.ID
	}
	util.Success(ctx, gin.H{"paths": paths, "activePathId": activeID})
}

// CreatePathRequest 手动建路径请求
type CreatePathRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Topics      []string `json:"topics" binding:"required,min=1"`
}

// Create godoc
// @Summary 手动创建学习路径
// @Description 单阶段自定义课程，创建后自动设为活动路径
// @Tags 学习路径
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreatePathRequest true "路径信息"
// @Success 201 {object} util.Response{data=model.LearningPath} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/paths [post]
func (c *LearningPathController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreatePathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path := c.PathService.CreateManualPath(ctx.Request.Context(), claims.UserID, req.Title, req.Description, req.Topics)
	util.Created(ctx, path)
}

// GeneratePathRequest AI生成路径请求
type GeneratePathRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	service.PathOptions
}

// Generate godoc
// @Summary AI生成学习路径
// @Description 按目标和约束生成多阶段课程，创建后自动设为活动路径
// @Tags 学习路径
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body GeneratePathRequest true "生成参数"
// @Success 201 {object} util.Response{data=model.LearningPath} "创建成功"
// @Failure 502 {object} util.Response "AI服务不可用"
// @Router /api/paths/generate [post]
func (c *LearningPathController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GeneratePathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.GenerateAIPath(ctx.Request.Context(), claims.UserID, req.Title, req.Description, req.PathOptions)
	if err != nil {
		util.Error(ctx, 502, "curriculum generation unavailable")
		return
	}
	util.Created(ctx, path)
}

// Select godoc
// @Summary 切换活动路径
// @Tags 学习路径
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "路径ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "路径不存在"
// @Router /api/paths/{id}/select [post]
func (c *LearningPathController) Select(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PathService.SelectActive(ctx.Request.Context(), claims.UserID, ctx.Param("id")); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary 删除学习路径
// @Description 删除活动路径时自动把活动指针移到剩余的第一条
// @Tags 学习路径
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "路径ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "路径不存在"
// @Router /api/paths/{id} [delete]
func (c *LearningPathController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PathService.DeletePath(ctx.Request.Context(), claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// Suggestions godoc
// @Summary AI推荐学习路径
// @Description 根据画像推荐3条学习方向
// @Tags 学习路径
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PathSuggestion} "成功"
// @Failure 502 {object} util.Response "AI服务不可用"
// @Router /api/paths/suggestions [get]
func (c *LearningPathController) Suggestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	suggestions, err := c.PathService.Suggestions(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.Error(ctx, 502, "suggestions unavailable")
		return
	}
	util.Success(ctx, suggestions)
}
