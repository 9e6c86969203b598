package member

import (
	"log/slog"

	"github.com/changhyeonkim/splearn/internal/shared/logger"
)

// Member is a membership account.
//
// Fields are unexported so a usable Member only comes from Create or
// Restore; both return either a fully populated Member or an error.
// Member is not safe for concurrent mutation.
type Member struct {
	email        Email
	nickname     string
	passwordHash string
	status       Status
}

// Create validates info, hashes the password with encoder and returns a
// PENDING member. Errors from encoder.Encode are returned unchanged.
func Create(info CreateInfo, encoder PasswordEncoder) (*Member, error) {
	if encoder == nil {
		return nil, newValidationError("passwordEncoder", "", ErrRequiredField)
	}

	if info.Email == "" {
		return nil, newValidationError("email", "", ErrRequiredField)
	}
	email, err := NewEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if info.Nickname == "" {
		return nil, newValidationError("nickname", "", ErrRequiredField)
	}
	if info.Password == "" {
		return nil, newValidationError("password", "", ErrRequiredField)
	}

	hash, err := encoder.Encode(info.Password)
	if err != nil {
		return nil, err
	}
	if hash == "" {
		return nil, newValidationError("passwordHash", "", ErrRequiredField)
	}

	return &Member{
		email:        email,
		nickname:     info.Nickname,
		passwordHash: hash,
		status:       StatusPending,
	}, nil
}

// Activate moves a PENDING member to ACTIVE.
func (m *Member) Activate() error {
	if m.status != StatusPending {
		return newIllegalStateError(m.status, "member is not pending", ErrMemberNotPending)
	}

	m.status = StatusActive
	return nil
}

// Deactivate moves an ACTIVE member to DEACTIVATED. DEACTIVATED is terminal.
func (m *Member) Deactivate() error {
	if m.status != StatusActive {
		return newIllegalStateError(m.status, "member is not active", ErrMemberNotActive)
	}

	m.status = StatusDeactivated
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
// It does not depend on the member's status.
func (m *Member) VerifyPassword(password string, encoder PasswordEncoder) bool {
	if encoder == nil {
		return false
	}
	return encoder.Matches(password, m.passwordHash)
}

func (m *Member) Email() Email {
	return m.email
}

func (m *Member) Nickname() string {
	return m.nickname
}

func (m *Member) PasswordHash() string {
	return m.passwordHash
}

func (m *Member) Status() Status {
	return m.status
}

// LogValue keeps the password hash out of logs and masks the email.
func (m *Member) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", logger.MaskEmail(m.email.Address())),
		slog.String("nickname", m.nickname),
		slog.String("status", m.status.String()),
	)
}
