package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 业务错误类别
type Kind int

const (
	// KindValidation 请求参数错误（未发起任何外部调用前即可判定）
	KindValidation Kind = iota + 1
	// KindNotFound 引用的比赛/队伍/选手/代码不存在
	KindNotFound
	// KindForbidden 功能未开放、无权限、角色未分配、代码未编译等
	KindForbidden
	// KindRateLimited 队伍活跃房间数超限（准入控制）
	KindRateLimited
	// KindInternal 外部系统或文件系统故障
	KindInternal
)

// ArenaError 对战服务错误
type ArenaError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error 实现 error 接口
func (e *ArenaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 支持错误链
func (e *ArenaError) Unwrap() error {
	return e.Err
}

// New 创建新的业务错误
func New(kind Kind, message string) *ArenaError {
	return &ArenaError{
		Kind:    kind,
		Message: message,
	}
}

// Newf 创建带格式化消息的业务错误
func Newf(kind Kind, format string, args ...any) *ArenaError {
	return &ArenaError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装已有错误
func Wrap(kind Kind, message string, err error) *ArenaError {
	return &ArenaError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf 获取错误类别；非业务错误一律视为内部错误
func KindOf(err error) Kind {
	var ae *ArenaError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsKind 判断错误是否属于指定类别
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus 错误类别到 HTTP 状态码的映射
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindRateLimited:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
