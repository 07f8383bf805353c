package controller

import (
	"errors"
	"io"

	"sanvii_backend/internal/service"
	"sanvii_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 简历上传大小上限
const maxResumeSize = 10 << 20

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// Latest godoc
// @Summary 最新简历分析
// @Tags 简历
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.ResumeAnalysis} "成功"
// @Router /api/resume/analysis [get]
func (c *ResumeController) Latest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.ResumeService.Latest(ctx.Request.Context(), claims.UserID))
}

// Analyze godoc
// @Summary 上传并分析简历
// @Description 支持 pdf/docx/txt/md，提取文本后做AI深度分析并归档原件
// @Tags 简历
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "简历文件"
// @Success 200 {object} util.Response{data=model.ResumeAnalysis} "成功"
// @Failure 400 {object} util.Response "文件类型不支持或内容为空"
// @Failure 502 {object} util.Response "AI服务不可用"
// @Router /api/resume/analyze [post]
func (c *ResumeController) Analyze(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxResumeSize {
		util.BadRequest(ctx, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	analysis, err := c.ResumeService.Analyze(ctx.Request.Context(), claims.UserID, fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnsupportedFile):
			util.BadRequest(ctx, "unsupported file type")
		case errors.Is(err, util.ErrEmptyResume):
			util.BadRequest(ctx, "no extractable text in file")
		default:
			util.Error(ctx, 502, "resume analysis unavailable")
		}
		return
	}
	util.Success(ctx, analysis)
}
