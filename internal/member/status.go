package member

import "fmt"

// Status is the lifecycle state of a Member.
//
//	PENDING --Activate--> ACTIVE --Deactivate--> DEACTIVATED
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusActive      Status = "ACTIVE"
	StatusDeactivated Status = "DEACTIVATED"
)

// ParseStatus converts a stored value back into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", newValidationError("status", s, fmt.Errorf("unknown status %q: %w", s, ErrInvalidStatus))
	}
	return status, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusDeactivated:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
