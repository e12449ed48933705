package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateBookingReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref, err := GenerateBookingReference()
		if err != nil {
			t.Fatalf("GenerateBookingReference: %v", err)
		}
		if !strings.HasPrefix(ref, "MR-") || len(ref) != 11 {
			t.Fatalf("unexpected reference format %q", ref)
		}
		for _, ch := range ref[3:] {
			if !strings.ContainsRune(referenceCharset, ch) {
				t.Fatalf("reference %q contains %q outside the charset", ref, ch)
			}
		}
		if seen[ref] {
			t.Fatalf("duplicate reference %q within 100 draws", ref)
		}
		seen[ref] = true
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	issued := time.Date(2024, time.June, 10, 15, 4, 5, 0, time.UTC)
	num, err := GenerateInvoiceNumber(issued)
	if err != nil {
		t.Fatalf("GenerateInvoiceNumber: %v", err)
	}
	if !strings.HasPrefix(num, "INV-20240610-") {
		t.Fatalf("unexpected invoice number %q", num)
	}
	if len(num) != len("INV-20240610-")+4 {
		t.Fatalf("unexpected invoice number length %q", num)
	}
}

func TestNormalizeIdempotencyKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantNil bool
		wantErr bool
	}{
		{name: "empty is nil", input: "", wantNil: true},
		{name: "whitespace is nil", input: "   ", wantNil: true},
		{name: "trimmed", input: "  abc-123  ", want: "abc-123"},
		{name: "uuid passes", input: NewIdempotencyKey(), want: ""},
		{name: "too long", input: strings.Repeat("x", 65), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeIdempotencyKey(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a key, got nil")
			}
			if tt.want != "" && *got != tt.want {
				t.Fatalf("got %q, want %q", *got, tt.want)
			}
		})
	}
}
