// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/kenone20/domainogen/pkg/httpx"
	"github.com/kenone20/domainogen/pkg/requestctx"
	availdomain "github.com/kenone20/domainogen/services/availability/domain"
	librarydomain "github.com/kenone20/domainogen/services/library/domain"
	studiodomain "github.com/kenone20/domainogen/services/studio/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, whose message
// is replaced by the status text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, true))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, requestctx.ErrOwnerNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, librarydomain.ErrAnalysisNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, availdomain.ErrInvalidDomainName),
		errors.Is(err, studiodomain.ErrInvalidPrompt),
		errors.Is(err, studiodomain.ErrInvalidDomain),
		errors.Is(err, librarydomain.ErrInvalidFavorite):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, studiodomain.ErrImageUnavailable):
		return http.StatusBadGateway // 502
	case errors.Is(err, librarydomain.ErrHistoryUnavailable):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
