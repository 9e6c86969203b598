package member

// CreateInfo carries the raw signup input consumed by Create.
// Validation happens in Create, not here.
type CreateInfo struct {
	Email    string
	Nickname string
	Password string
}

// PasswordEncoder hashes and verifies passwords on behalf of Member.
// Matches(p, Encode(p)) must always hold. Member never inspects the hash
// and never keeps a reference to the encoder.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(raw, hash string) bool
}
