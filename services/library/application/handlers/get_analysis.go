package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	"github.com/kenone20/domainogen/pkg/requestctx"
	appsvcs "github.com/kenone20/domainogen/services/library/application/services"
)

// AnalysisResponse is a previously served analysis.
type AnalysisResponse struct {
	Domain     string          `json:"domain"      example:"brandify.io"`
	Analysis   json.RawMessage `json:"analysis"    swaggertype:"object"`
	RecordedAt time.Time       `json:"recorded_at"`
} // @name AnalysisResponse

// GetAnalysisHandler handles GET /analyses/{domain} requests.
type GetAnalysisHandler struct {
	svc *appsvcs.Services
}

// NewGetAnalysisHandler returns a GetAnalysisHandler backed by the given services.
func NewGetAnalysisHandler(svc *appsvcs.Services) *GetAnalysisHandler {
	return &GetAnalysisHandler{svc: svc}
}

// Execute returns the caller's most recent analysis of a domain without
// calling the model again.
//
//	@Summary	Get the latest analysis of a domain
//	@Tags		library
//	@Produce	json
//	@Param		domain	path		string	true	"Domain name"	example(brandify.io)
//	@Success	200		{object}	AnalysisResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/analyses/{domain} [get]
func (h *GetAnalysisHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := requestctx.OwnerIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	domain := chi.URLParam(r, "domain")
	payload, recordedAt, err := h.svc.Library.LatestAnalysis(r.Context(), ownerID, domain)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AnalysisResponse{
		Domain:     domain,
		Analysis:   payload,
		RecordedAt: recordedAt,
	})
}
