package errors

import (
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *EngineError
		expected string
	}{
		{
			"without cause",
			New(UnsupportedQuery, "unknown query type: foo"),
			"[UNSUPPORTED_QUERY] unknown query type: foo",
		},
		{
			"with cause",
			Wrap(ModelLoadFailed, "failed to read schema.json", fmt.Errorf("open: no such file")),
			"[MODEL_LOAD_FAILED] failed to read schema.json: open: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(InternalError, "wrapped", cause)

	if err.Unwrap() != cause {
		t.Errorf("expected Unwrap to return the cause")
	}
	if New(InternalError, "no cause").Unwrap() != nil {
		t.Errorf("expected nil Unwrap without cause")
	}
}

func TestIsCode(t *testing.T) {
	err := Newf(MissingParameter, "featureType is required for category %q", "similar")

	if !IsCode(err, MissingParameter) {
		t.Errorf("expected IsCode to match MISSING_PARAMETER")
	}
	if IsCode(err, UnsupportedQuery) {
		t.Errorf("expected IsCode not to match UNSUPPORTED_QUERY")
	}
	if IsCode(fmt.Errorf("plain"), MissingParameter) {
		t.Errorf("expected IsCode false for non-engine error")
	}

	wrapped := fmt.Errorf("context: %w", err)
	if !IsCode(wrapped, MissingParameter) {
		t.Errorf("expected IsCode to unwrap to MISSING_PARAMETER")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(UnsupportedQuery, "unknown category").WithDetails(map[string]string{"category": "bogus"})
	details, ok := err.Details.(map[string]string)
	if !ok || details["category"] != "bogus" {
		t.Errorf("expected details to round-trip, got %#v", err.Details)
	}
}
