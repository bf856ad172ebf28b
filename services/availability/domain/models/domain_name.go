package models

import (
	"fmt"
	"strings"
)

// MaxDomainNameLength is the longest input accepted at the HTTP boundary.
const MaxDomainNameLength = 253

// DomainName is a domain split into its label and TLD. The TLD keeps its
// leading dot (".com", ".co.uk") and is empty when the input has no dot.
type DomainName struct {
	Label string
	TLD   string
}

// ParseDomainName lower-cases s and splits it at the first dot. It never
// fails: malformed input degrades to an empty TLD.
func ParseDomainName(s string) DomainName {
	s = strings.ToLower(strings.TrimSpace(s))
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return DomainName{Label: s}
	}
	return DomainName{Label: s[:i], TLD: s[i:]}
}

// NewDomainName parses s for request handling. Unlike ParseDomainName it
// rejects input that names nothing at all.
func NewDomainName(s string) (DomainName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DomainName{}, fmt.Errorf("domain name must not be empty")
	}
	if len(trimmed) > MaxDomainNameLength {
		return DomainName{}, fmt.Errorf("domain name must not exceed %d characters", MaxDomainNameLength)
	}
	return ParseDomainName(trimmed), nil
}

// String returns the canonical "label.tld" form.
func (d DomainName) String() string {
	return d.Label + d.TLD
}
