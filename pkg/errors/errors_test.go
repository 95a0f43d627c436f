package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "参数错误", err: New(KindValidation, "Missing credentials"), want: http.StatusUnprocessableEntity},
		{name: "资源不存在", err: New(KindNotFound, "Contest not found"), want: http.StatusBadRequest},
		{name: "无权限", err: New(KindForbidden, "Arena is not open"), want: http.StatusForbidden},
		{name: "限流", err: New(KindRateLimited, "Request arena too frequently"), want: http.StatusLocked},
		{name: "内部错误", err: New(KindInternal, "Room not created"), want: http.StatusInternalServerError},
		{name: "非业务错误按内部错误处理", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "Room not created", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if KindOf(err) != KindInternal {
		t.Errorf("KindOf = %v, want KindInternal", KindOf(err))
	}
	// 再包一层也要能取到类别
	outer := fmt.Errorf("pipeline: %w", err)
	if KindOf(outer) != KindInternal {
		t.Errorf("KindOf(outer) = %v, want KindInternal", KindOf(outer))
	}
	if !IsKind(outer, KindInternal) {
		t.Error("IsKind(outer) = false, want true")
	}
}

func TestErrorMessage(t *testing.T) {
	if got := New(KindForbidden, "Arena is not open").Error(); got != "Arena is not open" {
		t.Errorf("Error() = %q", got)
	}
	wrapped := Wrap(KindInternal, "Code download failed", errors.New("timeout"))
	if got := wrapped.Error(); got != "Code download failed: timeout" {
		t.Errorf("Error() = %q", got)
	}
}
