package domain

import "errors"

// Sentinel errors for the library domain. Use errors.Is() to check these.
var (
	// ErrAnalysisNotFound indicates the owner never analyzed the domain.
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrInvalidFavorite indicates a favorite name that is not a domain name.
	ErrInvalidFavorite = errors.New("invalid favorite domain")

	// ErrHistoryUnavailable indicates the history store is not configured.
	ErrHistoryUnavailable = errors.New("history store unavailable")
)
