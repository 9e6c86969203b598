package error_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	sharedError "github.com/changhyeonkim/splearn/internal/shared/error"
	"github.com/stretchr/testify/assert"
)

var errWidgetBroken = sharedError.NewDomainError("WIDGET_BROKEN")

func init() {
	sharedError.RegisterDomainErrorResponse("WIDGET_BROKEN", sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "WIDGET-001",
		Message: "위젯이 고장났습니다.",
	})
}

type widgetFieldError struct {
	field string
	err   error
}

func (e *widgetFieldError) Error() string        { return e.field + ": " + e.err.Error() }
func (e *widgetFieldError) Unwrap() error        { return e.err }
func (e *widgetFieldError) InvalidField() string { return e.field }

func TestResolveDomainError(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		wantOK    bool
		wantCode  string
		wantField string
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "unregistered sentinel", err: sharedError.NewDomainError("NOT_REGISTERED")},
		{name: "sentinel", err: errWidgetBroken, wantOK: true, wantCode: "WIDGET-001"},
		{name: "wrapped sentinel", err: fmt.Errorf("save: %w", errWidgetBroken), wantOK: true, wantCode: "WIDGET-001"},
		{
			name:      "field error",
			err:       fmt.Errorf("create: %w", &widgetFieldError{field: "size", err: errWidgetBroken}),
			wantOK:    true,
			wantCode:  "WIDGET-001",
			wantField: "size",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, ok := sharedError.ResolveDomainError(tc.err)

			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.Equal(t, tc.wantField, resp.Field)
		})
	}
}

func TestResolveDomainError_DoesNotLeakFieldIntoRegistry(t *testing.T) {
	_, _ = sharedError.ResolveDomainError(&widgetFieldError{field: "size", err: errWidgetBroken})

	resp, ok := sharedError.ResolveDomainError(errWidgetBroken)

	assert.True(t, ok)
	assert.Empty(t, resp.Field)
}

func TestResolve_FallsBackToInternalServerError(t *testing.T) {
	assert.Equal(t, sharedError.InternalServerError, sharedError.Resolve(errors.New("boom")))
	assert.Equal(t, "WIDGET-001", sharedError.Resolve(errWidgetBroken).Code)
}
