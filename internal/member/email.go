package member

import "regexp"

// emailRegex matches local-part@domain-part.
// Syntax only: no DNS or MX lookup is performed.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// Email is a validated email address. Compare with ==.
type Email struct {
	address string
}

// NewEmail validates address and wraps it as an Email.
// An empty address is reported as an invalid format.
func NewEmail(address string) (Email, error) {
	if !IsValidEmail(address) {
		return Email{}, newValidationError("email", address, ErrInvalidEmail)
	}
	return Email{address: address}, nil
}

// IsValidEmail reports whether address has the shape accepted by NewEmail.
func IsValidEmail(address string) bool {
	return emailRegex.MatchString(address)
}

func (e Email) Address() string {
	return e.address
}

func (e Email) String() string {
	return e.address
}
