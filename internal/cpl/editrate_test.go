package cpl

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEditRate(t *testing.T) {
	rate, err := NewEditRate([]int64{24, 1})
	if err != nil {
		t.Fatalf("NewEditRate returned error: %v", err)
	}
	if rate.Numerator() != 24 || rate.Denominator() != 1 {
		t.Fatalf("unexpected edit rate: %s", rate)
	}
	if rate.Float64() != 24 {
		t.Fatalf("unexpected float rate: %v", rate.Float64())
	}
}

func TestNewEditRateKeepsValuesAsWritten(t *testing.T) {
	rate, err := NewEditRate([]int64{48000, 2000})
	if err != nil {
		t.Fatalf("NewEditRate returned error: %v", err)
	}
	if rate.String() != "48000/2000" {
		t.Fatalf("expected unreduced rate, got %s", rate)
	}
	zero, err := NewEditRate([]int64{24, 0})
	if err != nil {
		t.Fatalf("expected zero denominator to be accepted, got %v", err)
	}
	if zero.Float64() != 0 {
		t.Fatalf("expected 0 for zero denominator, got %v", zero.Float64())
	}
}

func TestNewEditRateRejectsWrongLength(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
	}{
		{"empty", nil},
		{"one", []int64{24}},
		{"three", []int64{24, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEditRate(tt.values)
			var malformed *MalformedEditRateError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedEditRateError, got %v", err)
			}
			if len(malformed.Values) != len(tt.values) {
				t.Fatalf("expected values to be reported, got %v", malformed.Values)
			}
			if !errors.Is(err, ErrInvalidComposition) {
				t.Fatalf("expected error to wrap ErrInvalidComposition")
			}
		})
	}
}

func TestMalformedEditRateMessage(t *testing.T) {
	_, err := NewEditRate([]int64{24, 1, 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "found 3 numbers") || !strings.Contains(err.Error(), "[24 1 1]") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
