package handlers

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid prompt"`
} // @name StudioErrorResponse
