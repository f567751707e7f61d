package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxPropertyKey is the longest property key accepted, in bytes.
	MaxPropertyKey = 256

	// MaxStringValue is the longest string property value accepted, in bytes.
	MaxStringValue = 64 * 1024

	// MaxBufferValue is the largest raw byte property value accepted.
	MaxBufferValue = 16 * 1024 * 1024

	// MaxSampleElements is the largest sample buffer, in elements, that
	// may be allocated for a foreign caller.
	MaxSampleElements = 64 * 1024 * 1024
)

var (
	// ErrTooLarge indicates a size above its limit.
	ErrTooLarge = errors.New("size exceeds limit")

	// ErrNegativeSize indicates a negative length from a foreign caller.
	ErrNegativeSize = errors.New("negative size")
)

// ValidateSize checks size against maxSize.
func ValidateSize(size, maxSize int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	if size > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrTooLarge, size, maxSize)
	}
	return nil
}

// ValidateKey checks a property key against MaxPropertyKey.
func ValidateKey(key string) error {
	if len(key) > MaxPropertyKey {
		return fmt.Errorf("%w: key size %d exceeds limit %d", ErrTooLarge, len(key), MaxPropertyKey)
	}
	return nil
}

// ValidateString checks a string value length against MaxStringValue.
func ValidateString(size int) error {
	if err := ValidateSize(size, MaxStringValue); err != nil {
		return fmt.Errorf("string value: %w", err)
	}
	return nil
}

// ValidateBuffer checks a raw buffer length against MaxBufferValue.
func ValidateBuffer(size int) error {
	if err := ValidateSize(size, MaxBufferValue); err != nil {
		return fmt.Errorf("buffer value: %w", err)
	}
	return nil
}

// ValidateSampleElements checks a sample buffer element count against
// MaxSampleElements.
func ValidateSampleElements(count int) error {
	if err := ValidateSize(count, MaxSampleElements); err != nil {
		return fmt.Errorf("sample buffer: %w", err)
	}
	return nil
}
