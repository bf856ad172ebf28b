package handlers

import (
	"encoding/json"
	"time"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"history unavailable"`
} // @name LibraryErrorResponse

// HistoryEntryResponse is one past generation or analysis.
type HistoryEntryResponse struct {
	ID        string          `json:"id"                example:"0b9f7f0e-6a8e-4a8a-8f3e-0f1d2c3b4a59"`
	Type      string          `json:"type"              example:"generation"`
	Prompt    string          `json:"prompt,omitempty"  example:"a SaaS for online courses"`
	Style     string          `json:"style,omitempty"   example:"Modern"`
	TLDs      []string        `json:"tlds,omitempty"`
	Domain    string          `json:"domain,omitempty"  example:"brandify.io"`
	Payload   json.RawMessage `json:"payload"           swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
} // @name HistoryEntryResponse

// FavoriteResponse is one starred domain.
type FavoriteResponse struct {
	Name      string     `json:"name"                 example:"zenflow.io"`
	Status    string     `json:"status"               example:"available"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
} // @name FavoriteResponse
