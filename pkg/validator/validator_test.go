package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
)

type sampleStruct struct {
	OwnerID string `validate:"required,uuid"`
	Name    string `validate:"required,min=1,max=10"`
	Domain  string `validate:"omitempty,domain"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		OwnerID: "550e8400-e29b-41d4-a716-446655440000",
		Name:    "hello",
		Domain:  "brandify.io",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&sampleStruct{}))
	if m["OwnerID"] != "This field is required" {
		t.Errorf("unexpected OwnerID message: %q", m["OwnerID"])
	}
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_uuid(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&sampleStruct{OwnerID: "not-a-uuid", Name: "ok"}))
	if m["OwnerID"] != "Must be a valid UUID" {
		t.Errorf("unexpected OwnerID message: %q", m["OwnerID"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{OwnerID: "550e8400-e29b-41d4-a716-446655440000", Name: "12345678901"} // 11 chars > max=10
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_domain(t *testing.T) {
	s := sampleStruct{OwnerID: "550e8400-e29b-41d4-a716-446655440000", Name: "ok", Domain: "Not A Domain"}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	if !strings.Contains(m["Domain"], "domain name") {
		t.Errorf("unexpected Domain message: %q", m["Domain"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

func TestIsDomain(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"brandify.io", true},
		{"love.com", true},
		{"shop.co.uk", true},
		{"my-brand.dev", true},
		{"nodot", false},
		{"Upper.com", false},
		{"-bad.com", false},
		{"bad-.com", false},
		{"spaces here.com", false},
		{".com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := pkgvalidator.IsDomain(tt.in); got != tt.want {
			t.Errorf("IsDomain(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsTLD(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{".com", true},
		{".co.uk", true},
		{".online", true},
		{"com", false},
		{".c", false},
		{".COM", false},
		{".1com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := pkgvalidator.IsTLD(tt.in); got != tt.want {
			t.Errorf("IsTLD(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// --- ValidateRequest ---

type generateReq struct {
	Prompt string   `json:"prompt" validate:"required,min=3,max=500"`
	Style  string   `json:"style"  validate:"omitempty,oneof=Brandable Modern"`
	TLDs   []string `json:"tlds"   validate:"omitempty,max=10,dive,tld"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"prompt":"a SaaS for online courses","style":"Modern","tlds":[".com",".io"]}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[generateReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Prompt != "a SaaS for online courses" || len(req.TLDs) != 2 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[generateReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"style":"Modern"}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[generateReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing prompt")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_invalidTLD(t *testing.T) {
	body := `{"prompt":"coffee shop","tlds":["com"]}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[generateReq](w, r); ok {
		t.Fatal("expected ok=false for TLD without leading dot")
	}
	if !strings.Contains(w.Body.String(), "TLD") {
		t.Errorf("expected TLD error in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"prompt":"` + strings.Repeat("a", 2048) + `"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Body = http.MaxBytesReader(w, r.Body, 64)

	if _, ok := pkgvalidator.ValidateRequest[generateReq](w, r); ok {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
