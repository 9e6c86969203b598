package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errEngineUnavailable = errors.New("validator 엔진을 가져올 수 없습니다")

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errEngineUnavailable
	}
	return v, nil
}

// JSONFieldName reports fields by their json name so error responses use
// the names clients send.
func JSONFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// RegisterAll registers the common validators of this package on gin's
// engine. Domains register their own tags separately.
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	v.RegisterTagNameFunc(JSONFieldName)

	if err := v.RegisterValidation("nickname", ValidateNickname); err != nil {
		return fmt.Errorf("nickname validator 등록 실패: %w", err)
	}

	slog.Info("공통 Validator 등록 완료", "validators", "nickname")
	return nil
}
