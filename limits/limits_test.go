package limits

import (
	"errors"
	"strings"
	"testing"
)

// TestValidateSize tests the generic size validator
func TestValidateSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		max     int
		wantErr error
	}{
		{name: "zero", size: 0, max: 10, wantErr: nil},
		{name: "at limit", size: 10, max: 10, wantErr: nil},
		{name: "over limit", size: 11, max: 10, wantErr: ErrTooLarge},
		{name: "negative", size: -1, max: 10, wantErr: ErrNegativeSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.size, tt.max)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSize(%d, %d) = %v, want %v", tt.size, tt.max, err, tt.wantErr)
			}
		})
	}
}

// TestValidateKey tests the property key limit
func TestValidateKey(t *testing.T) {
	if err := ValidateKey(""); err != nil {
		t.Errorf("empty key rejected: %v", err)
	}
	if err := ValidateKey(strings.Repeat("k", MaxPropertyKey)); err != nil {
		t.Errorf("max-size key rejected: %v", err)
	}
	err := ValidateKey(strings.Repeat("k", MaxPropertyKey+1))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversized key: got %v, want ErrTooLarge", err)
	}
	if !strings.Contains(err.Error(), "257") {
		t.Errorf("error should report the size: %v", err)
	}
}

// TestValueValidators tests the per-kind wrappers
func TestValueValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate func(int) error
		limit    int
		prefix   string
	}{
		{"string", ValidateString, MaxStringValue, "string value"},
		{"buffer", ValidateBuffer, MaxBufferValue, "buffer value"},
		{"samples", ValidateSampleElements, MaxSampleElements, "sample buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.validate(tt.limit); err != nil {
				t.Errorf("at limit: unexpected error %v", err)
			}
			err := tt.validate(tt.limit + 1)
			if !errors.Is(err, ErrTooLarge) {
				t.Errorf("over limit: got %v, want ErrTooLarge", err)
			}
			if err != nil && !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("error %q should start with %q", err, tt.prefix)
			}
			if !errors.Is(tt.validate(-5), ErrNegativeSize) {
				t.Errorf("negative size should be rejected")
			}
		})
	}
}
