package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kenone20/domainogen/pkg/logger"
	appsvcs "github.com/kenone20/domainogen/services/availability/application/services"
	domainsvcs "github.com/kenone20/domainogen/services/availability/domain/services"
)

func newRouter() http.Handler {
	svcs := &appsvcs.Services{
		Availability: appsvcs.NewAvailabilityService(domainsvcs.NewOracle(), nil, logger.Discard()),
	}
	r := chi.NewRouter()
	Mount(r, svcs)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCheckAvailability_Batch(t *testing.T) {
	rr := do(t, newRouter(), http.MethodPost, "/availability/check",
		`{"domains":["ab.com","love.com","ab.com","zqflowify.dev"]}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Results map[string]bool `json:"results"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 unique results, got %v", resp.Results)
	}
	if resp.Results["ab.com"] || resp.Results["love.com"] {
		t.Fatalf("short and dictionary .com names must be taken: %v", resp.Results)
	}
}

func TestCheckAvailability_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"empty list", `{"domains":[]}`, http.StatusUnprocessableEntity},
		{"missing field", `{}`, http.StatusUnprocessableEntity},
		{"blank entry", `{"domains":[""]}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rr := do(t, newRouter(), http.MethodPost, "/availability/check", tt.body); rr.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rr.Code)
			}
		})
	}
}

func TestGetAvailability(t *testing.T) {
	rr := do(t, newRouter(), http.MethodGet, "/availability/Love.com", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]any
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp["domain"] != "love.com" || resp["available"] != false || resp["bucket"] != "dictionary-com" {
		t.Fatalf("unexpected response %v", resp)
	}
}

func TestGetAge(t *testing.T) {
	rr := do(t, newRouter(), http.MethodGet, "/availability/brandster.io/age", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if !regexp.MustCompile(`^(New|[1-9][0-9]* (month|year)s?)$`).MatchString(resp["age"]) {
		t.Fatalf("invalid age %q", resp["age"])
	}
}

func TestListTLDs(t *testing.T) {
	rr := do(t, newRouter(), http.MethodGet, "/tlds", "")
	var resp struct {
		TLDs []string `json:"tlds"`
	}
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if len(resp.TLDs) == 0 || resp.TLDs[0] != ".com" {
		t.Fatalf("unexpected tlds %v", resp.TLDs)
	}
}
