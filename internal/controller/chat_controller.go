package controller

import (
	"sanvii_backend/internal/service"
	"sanvii_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// History godoc
// @Summary 顾问会话历史
// @Tags 顾问对话
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ChatMessage} "成功"
// @Router /api/chat/messages [get]
func (c *ChatController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.ChatService.History(ctx.Request.Context(), claims.UserID))
}

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Send godoc
// @Summary 向职业顾问发送消息
// @Description 追加用户消息并返回含AI回复的完整历史；AI失败时用户消息保留
// @Tags 顾问对话
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SendMessageRequest true "消息内容"
// @Success 200 {object} util.Response{data=[]model.ChatMessage} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 502 {object} util.Response "AI服务不可用"
// @Router /api/chat/messages [post]
func (c *ChatController) Send(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	messages, err := c.ChatService.Send(ctx.Request.Context(), claims.UserID, req.Content)
	if err != nil {
		// 用户消息已落库，把现有历史连同错误码一起返回
		util.Error(ctx, 502, "assistant unavailable")
		return
	}
	util.Success(ctx, messages)
}
