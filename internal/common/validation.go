package common

import (
	"fmt"
	"strings"
)

// ValidateUserID rejects ids that would produce a key usable by no one or by
// everyone.
func ValidateUserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidIdentity)
	}
	return nil
}

func ValidateSession(s Session) error {
	if err := ValidateUserID(s.ID); err != nil {
		return err
	}
	if !s.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidIdentity, s.Role)
	}
	return nil
}

// NormalizeContent trims surrounding whitespace and rejects blank messages.
func NormalizeContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	return trimmed, nil
}

// Initials takes the first letter of every word, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
