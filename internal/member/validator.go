package member

import (
	"fmt"
	"log/slog"

	sharedValidator "github.com/changhyeonkim/splearn/internal/shared/validator"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers member-specific binding tags.
//
//	member_email: same syntax NewEmail accepts
func RegisterValidators() error {
	v, err := sharedValidator.GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	if err := v.RegisterValidation("member_email", validateEmail); err != nil {
		return fmt.Errorf("member_email validator 등록 실패: %w", err)
	}

	slog.Info("회원 Validator 등록 완료", "validators", "member_email")
	return nil
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
