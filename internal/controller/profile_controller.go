package controller

import (
	"sanvii_backend/internal/service"
	"sanvii_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// Get godoc
// @Summary 获取职业档案
// @Description 档案不存在时返回默认档案，不报错
// @Tags 档案
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.CareerProfile} "成功"
// @Router /api/profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.ProfileService.Get(ctx.Request.Context(), claims.UserID))
}

// UpdateStep godoc
// @Summary 引导向导步骤更新
// @Description 增量合并一步的表单数据，零值字段不覆盖
// @Tags 档案
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.OnboardingUpdate true "步骤数据"
// @Success 200 {object} util.Response{data=model.CareerProfile} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/profile/onboarding [patch]
func (c *ProfileController) UpdateStep(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var update service.OnboardingUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.ProfileService.ApplyStep(ctx.Request.Context(), claims.UserID, update))
}

// Complete godoc
// @Summary 完成引导
// @Description 所有步骤确认后置位完成标志
// @Tags 档案
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.CareerProfile} "成功"
// @Router /api/profile/onboarding/complete [post]
func (c *ProfileController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.ProfileService.CompleteOnboarding(ctx.Request.Context(), claims.UserID))
}
