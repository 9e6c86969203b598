package member

// Snapshot is the storable form of a Member.
// Storage must round-trip all four fields without loss.
type Snapshot struct {
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	PasswordHash string `json:"passwordHash"`
	Status       Status `json:"status"`
}

func (m *Member) Snapshot() Snapshot {
	return Snapshot{
		Email:        m.email.Address(),
		Nickname:     m.nickname,
		PasswordHash: m.passwordHash,
		Status:       m.status,
	}
}

// Restore rebuilds a Member from a Snapshot, re-checking every invariant.
func Restore(s Snapshot) (*Member, error) {
	email, err := NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	if s.Nickname == "" {
		return nil, newValidationError("nickname", "", ErrRequiredField)
	}
	if s.PasswordHash == "" {
		return nil, newValidationError("passwordHash", "", ErrRequiredField)
	}
	status, err := ParseStatus(string(s.Status))
	if err != nil {
		return nil, err
	}

	return &Member{
		email:        email,
		nickname:     s.Nickname,
		passwordHash: s.PasswordHash,
		status:       status,
	}, nil
}
