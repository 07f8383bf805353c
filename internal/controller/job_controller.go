package controller

import (
	"sanvii_backend/internal/service"
	"sanvii_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	JobService *service.JobService
}

func NewJobController(jobService *service.JobService) *JobController {
	return &JobController{JobService: jobService}
}

// Search godoc
// @Summary 实时职位匹配
// @Description 基于画像目标岗位搜索职位，返回匹配度、缺口技能与引用来源
// @Tags 职位匹配
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.JobSearchResult} "成功"
// @Failure 502 {object} util.Response "AI服务不可用"
// @Router /api/jobs/search [post]
func (c *JobController) Search(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.JobService.Search(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.Error(ctx, 502, "job search unavailable")
		return
	}
	util.Success(ctx, result)
}
