package service

import (
	"strings"

	"counsel-link/backend/internal/dto"
)

// ChatbotService 聊天助手业务接口
// 关键词匹配的固定回复，无外部模型依赖
type ChatbotService interface {
	Reply(req *dto.ChatMessageRequest) *dto.ChatMessageResponse
}

type chatbotService struct{}

// NewChatbotService 创建 ChatbotService 实例
func NewChatbotService() ChatbotService {
	return &chatbotService{}
}

const chatbotFallback = "I am not sure about that. Can you ask differently?"

// 关键词 → 回复，按声明顺序匹配
var chatbotRules = []struct {
	keyword string
	reply   string
}{
	{"book", "Sure! Who would you like to book a session with?"},
	{"available", "You can check available counselors on your dashboard above."},
	{"stress", "I suggest talking to our mental health counselors. Shall I show you?"},
}

func (s *chatbotService) Reply(req *dto.ChatMessageRequest) *dto.ChatMessageResponse {
	msg := strings.ToLower(req.Message)
	for _, rule := range chatbotRules {
		if strings.Contains(msg, rule.keyword) {
			return &dto.ChatMessageResponse{Response: rule.reply}
		}
	}
	return &dto.ChatMessageResponse{Response: chatbotFallback}
}
