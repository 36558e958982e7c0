// Package gate implements the passphrase check in front of sensitive
// sections. It is a shared-secret UX gate, not a security boundary: plain
// equality, no lockout, no audit log.
package gate

// Sections that require the passphrase before navigation.
var protectedSections = map[string]struct{}{
	"Report":     {},
	"History":    {},
	"Menu Items": {},
}

type Gate struct {
	passphrase string
}

func New(passphrase string) *Gate {
	return &Gate{passphrase: passphrase}
}

// IsGated reports whether the named section sits behind the gate.
func (g *Gate) IsGated(section string) bool {
	_, ok := protectedSections[section]
	return ok
}

// Check reports whether candidate matches the configured passphrase.
func (g *Gate) Check(candidate string) bool {
	return candidate == g.passphrase
}
