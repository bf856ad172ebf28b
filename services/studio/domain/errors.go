package domain

import "errors"

// Sentinel errors for the studio domain. Use errors.Is() to check these.
var (
	// ErrInvalidPrompt indicates a generation or logo prompt that is empty
	// after trimming.
	ErrInvalidPrompt = errors.New("invalid prompt")

	// ErrInvalidDomain indicates an analysis target that is not a domain name.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrModelUnavailable indicates no model credential is configured. It
	// never leaves the orchestrator; it only selects the mock path.
	ErrModelUnavailable = errors.New("generative model unavailable")

	// ErrNonConforming indicates a model reply that does not match the
	// requested schema.
	ErrNonConforming = errors.New("model reply does not conform to schema")

	// ErrImageUnavailable indicates both the image model and the placeholder
	// source failed. It is the only error the orchestrator surfaces.
	ErrImageUnavailable = errors.New("logo image unavailable")
)
