// Package color describes the color spaces a video profile can declare.
package color

import (
	"errors"
	"fmt"
)

// ErrUnknownColorSpace is returned when a tag name does not match any ColorSpace.
var ErrUnknownColorSpace = errors.New("unknown color space")

// ColorSpace is a closed enumeration of supported color space tags.
// The zero value is Invalid.
type ColorSpace uint8

const (
	// Invalid is the default, unset color space.
	Invalid ColorSpace = iota
	Unspecified
	Reserved

	Rgb
	Bt601
	Bt709
	Bt2020Cl
	Bt2020Ncl
	Fcc
	Bt470bg
	Smpte170m
	Smpte240m
	Smpte2085
	Ycgco

	colorSpaceCount
)

var colorSpaceNames = [colorSpaceCount]string{
	Invalid:     "Invalid",
	Unspecified: "Unspecified",
	Reserved:    "Reserved",
	Rgb:         "Rgb",
	Bt601:       "Bt601",
	Bt709:       "Bt709",
	Bt2020Cl:    "Bt2020Cl",
	Bt2020Ncl:   "Bt2020Ncl",
	Fcc:         "Fcc",
	Bt470bg:     "Bt470bg",
	Smpte170m:   "Smpte170m",
	Smpte240m:   "Smpte240m",
	Smpte2085:   "Smpte2085",
	Ycgco:       "Ycgco",
}

// All returns every color space in declaration order.
func All() []ColorSpace {
	out := make([]ColorSpace, 0, colorSpaceCount)
	for c := Invalid; c < colorSpaceCount; c++ {
		out = append(out, c)
	}
	return out
}

// IsValid reports whether c is one of the declared tags.
func (c ColorSpace) IsValid() bool {
	return c < colorSpaceCount
}

// String returns the tag name, or a numeric form for out-of-range values.
func (c ColorSpace) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("ColorSpace(%d)", uint8(c))
	}
	return colorSpaceNames[c]
}

// ParseColorSpace maps a tag name such as "Bt709" to its ColorSpace.
// Matching is exact.
func ParseColorSpace(name string) (ColorSpace, error) {
	for i, n := range colorSpaceNames {
		if n == name {
			return ColorSpace(i), nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownColorSpace, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorSpace) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColorSpace, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorSpace) UnmarshalText(text []byte) error {
	parsed, err := ParseColorSpace(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
