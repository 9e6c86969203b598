package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// nicknameRegex allows Hangul, latin letters, digits and underscore.
// Length is checked with min/max tags.
var nicknameRegex = regexp.MustCompile(`^[\p{Hangul}A-Za-z0-9_]+$`)

// ValidateNickname is the "nickname" binding tag.
func ValidateNickname(fl validator.FieldLevel) bool {
	return nicknameRegex.MatchString(fl.Field().String())
}
