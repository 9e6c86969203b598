package testutil

import (
	"strings"

	"github.com/changhyeonkim/splearn/internal/member"
)

const fakeHashPrefix = "fake-hash:"

// FakePasswordEncoder is a reversible stand-in for a real hasher.
// Encode("pw") == "fake-hash:pw".
type FakePasswordEncoder struct {
	EncodeFunc func(raw string) (string, error)
}

func (f *FakePasswordEncoder) Encode(raw string) (string, error) {
	if f.EncodeFunc != nil {
		return f.EncodeFunc(raw)
	}
	return fakeHashPrefix + raw, nil
}

func (f *FakePasswordEncoder) Matches(raw, hash string) bool {
	stored, ok := strings.CutPrefix(hash, fakeHashPrefix)
	return ok && stored == raw
}

// Ensure FakePasswordEncoder implements member.PasswordEncoder
var _ member.PasswordEncoder = (*FakePasswordEncoder)(nil)

// NewFakePasswordEncoder creates a fake encoder with default behavior
func NewFakePasswordEncoder() *FakePasswordEncoder {
	return &FakePasswordEncoder{}
}
