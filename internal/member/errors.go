package member

import (
	"fmt"
	"net/http"

	sharedError "github.com/changhyeonkim/splearn/internal/shared/error"
)

const (
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS" // errInfo
	memberNotFound      = "MEMBER_NOT_FOUND"      // errInfo
	memberNotPending    = "MEMBER_NOT_PENDING"    // errInfo
	memberNotActive     = "MEMBER_NOT_ACTIVE"     // errInfo
	invalidEmail        = "INVALID_EMAIL"         // errInfo
	requiredField       = "REQUIRED_FIELD"        // errInfo
	invalidStatus       = "INVALID_STATUS"        // errInfo
	passwordMismatch    = "PASSWORD_MISMATCH"     // errInfo
)

var (
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
	ErrMemberNotPending    = sharedError.NewDomainError(memberNotPending)
	ErrMemberNotActive     = sharedError.NewDomainError(memberNotActive)
	ErrInvalidEmail        = sharedError.NewDomainError(invalidEmail)
	ErrRequiredField       = sharedError.NewDomainError(requiredField)
	ErrInvalidStatus       = sharedError.NewDomainError(invalidStatus)
	ErrPasswordMismatch    = sharedError.NewDomainError(passwordMismatch)
)

// ValidationError reports an input that breaks a Member or Email invariant.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func newValidationError(field, value string, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("member: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("member: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InvalidField lets error responses name the rejected field.
func (e *ValidationError) InvalidField() string {
	return e.Field
}

// IllegalStateError reports a lifecycle transition attempted from the wrong status.
// It signals a workflow error in the caller and is never retried.
type IllegalStateError struct {
	Status  Status
	Message string
	Err     error
}

func newIllegalStateError(status Status, message string, err error) *IllegalStateError {
	return &IllegalStateError{Status: status, Message: message, Err: err}
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("member: %s (status=%s)", e.Message, e.Status)
}

func (e *IllegalStateError) Unwrap() error {
	return e.Err
}

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입된 사용자입니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotPending, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-003",
		Message: "가입 대기 중인 회원만 활성화할 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotActive, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-004",
		Message: "활성 상태의 회원만 탈퇴할 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidEmail, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-005",
		Message: "이메일 형식이 올바르지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(requiredField, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-006",
		Message: "필수 항목을 입력해 주세요.",
	})
}
