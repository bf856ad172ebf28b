package models

import (
	"slices"
	"testing"
)

func TestNewGenerationRequest(t *testing.T) {
	req, err := NewGenerationRequest("  coffee shop  ", "", []string{"IO", ".com", " .io ", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Prompt != "coffee shop" {
		t.Errorf("prompt = %q", req.Prompt)
	}
	if req.Style != DefaultStyle {
		t.Errorf("style = %q, want %q", req.Style, DefaultStyle)
	}
	if !slices.Equal(req.TLDs, []string{".io", ".com"}) {
		t.Errorf("tlds = %v", req.TLDs)
	}
}

func TestNewGenerationRequest_DefaultTLD(t *testing.T) {
	req, err := NewGenerationRequest("coffee", "Modern", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(req.TLDs, []string{DefaultTLD}) {
		t.Errorf("tlds = %v, want [%s]", req.TLDs, DefaultTLD)
	}
}

func TestNewGenerationRequest_DropsMalformedTLDs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"digits only", []string{"web3", "c0m"}, []string{DefaultTLD}},
		{"mixed", []string{".web3", ".io", "x", ".co.uk", "my-tld"}, []string{".io", ".co.uk"}},
		{"too deep", []string{".a.b.c"}, []string{DefaultTLD}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewGenerationRequest("coffee", "", tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(req.TLDs, tt.want) {
				t.Errorf("tlds = %v, want %v", req.TLDs, tt.want)
			}
		})
	}
}

func TestNewGenerationRequest_EmptyPrompt(t *testing.T) {
	if _, err := NewGenerationRequest(" \t ", "", nil); err == nil {
		t.Fatal("expected error for blank prompt")
	}
}

func TestNewCandidate(t *testing.T) {
	c := NewCandidate("brandify.io")
	if c.Status != StatusPending || c.IsFavorited {
		t.Fatalf("unexpected candidate %+v", c)
	}
}

func TestStatusOf(t *testing.T) {
	if StatusOf(true) != StatusAvailable || StatusOf(false) != StatusTaken {
		t.Fatal("StatusOf mapping is wrong")
	}
}
