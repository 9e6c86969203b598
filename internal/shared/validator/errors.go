package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/changhyeonkim/splearn/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
// Only the first failing field is reported.
func ToErrorResponse(err error) (sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return sharedError.ErrorResponse{}, false
	}

	fieldErr := validationErrors[0]

	resp := sharedError.ValidationFailed
	resp.Message = errorMessage(fieldErr)
	resp.Field = fieldErr.Field()
	return resp, true
}

// errorMessage returns the client message for a failed tag
func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목을 입력해 주세요."
	case "email", "member_email":
		return "이메일 형식이 올바르지 않습니다."
	case "min":
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
	case "nickname":
		return "닉네임은 한글, 영문, 숫자, 밑줄(_)만 사용할 수 있습니다."
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}
