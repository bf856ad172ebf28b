package handlers

import (
	"github.com/kenone20/domainogen/services/library/domain/models"
)

func toHistoryResponses(entries []*models.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntryResponse{
			ID:        e.ID.String(),
			Type:      string(e.Kind),
			Prompt:    e.Prompt,
			Style:     e.Style,
			TLDs:      e.TLDs,
			Domain:    e.Domain,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

func toFavoriteResponses(favs []*models.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, len(favs))
	for i, f := range favs {
		out[i] = FavoriteResponse{
			Name:      f.Domain,
			Status:    string(f.Status),
			CreatedAt: f.CreatedAt,
		}
		if !f.CheckedAt.IsZero() {
			checked := f.CheckedAt
			out[i].CheckedAt = &checked
		}
	}
	return out
}
