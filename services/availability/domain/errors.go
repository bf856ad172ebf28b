package domain

import "errors"

// Sentinel errors for the availability domain. Use errors.Is() to check these.
var (
	// ErrInvalidDomainName indicates request input that cannot name a domain
	// at all (empty, whitespace, or oversized). The oracle itself never
	// rejects input; this guards the HTTP boundary only.
	ErrInvalidDomainName = errors.New("invalid domain name")

	// ErrIndeterminate indicates a check that did not finish before its
	// deadline. Callers resolve it as taken.
	ErrIndeterminate = errors.New("availability indeterminate")
)
