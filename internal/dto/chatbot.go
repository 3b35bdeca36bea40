package dto

// ── 聊天助手 DTO ──

// ChatMessageRequest 聊天消息请求
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required,max=500"`
}

// ChatMessageResponse 聊天回复响应
type ChatMessageResponse struct {
	Response string `json:"response"`
}
