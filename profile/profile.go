// Package profile describes video formats: frame size, frame rate, aspect
// ratios, color space and scan type.
//
// A Profile is immutable by convention. Build one with a Builder, which
// starts from all-default fields and overrides only what is set.
//
//	p := profile.NewBuilder().
//	    SetFrame(geometry.Frame{Width: 1920, Height: 1080}).
//	    SetFrameRate(profile.Rational{Number: 30000, Denominator: 1001}).
//	    SetRenderType(profile.Progressive).
//	    Build()
//
//	fps := p.FPS() // 29.97...
//
// The derived metrics (FPS, SAR, DAR) perform no zero checks: a zero
// denominator yields +Inf or NaN. Call Validate first when defined results
// are required.
package profile

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/opd-ai/mediacore/color"
	"github.com/opd-ai/mediacore/geometry"
)

var (
	// ErrZeroDenominator indicates a ratio with a zero denominator.
	ErrZeroDenominator = errors.New("ratio has zero denominator")

	// ErrUnknownRenderType indicates an unrecognized render type tag.
	ErrUnknownRenderType = errors.New("unknown render type")

	// ErrUnknownExplicitType indicates an unrecognized explicit type tag.
	ErrUnknownExplicitType = errors.New("unknown explicit type")
)

// Scalar is the set of numeric types a Ratio can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Ratio is a number/denominator pair kept undivided.
type Ratio[N, D Scalar] struct {
	Number      N `json:"number" yaml:"number"`
	Denominator D `json:"denominator" yaml:"denominator"`
}

// Rational is the single precision ratio used throughout Profile.
type Rational = Ratio[float32, float32]

// Float32 returns Number/Denominator in single precision.
func (r Ratio[N, D]) Float32() float32 {
	return float32(r.Number) / float32(r.Denominator)
}

// IsZeroDenominator reports whether the denominator is zero.
func (r Ratio[N, D]) IsZeroDenominator() bool {
	return r.Denominator == 0
}

// String implements fmt.Stringer.
func (r Ratio[N, D]) String() string {
	return fmt.Sprintf("%v/%v", r.Number, r.Denominator)
}

// RenderType is the scan type used when rendering.
type RenderType uint8

const (
	// Interlace is the default render type for new profiles.
	Interlace RenderType = iota
	Progressive
)

// String implements fmt.Stringer.
func (r RenderType) String() string {
	switch r {
	case Interlace:
		return "Interlace"
	case Progressive:
		return "Progressive"
	}
	return fmt.Sprintf("RenderType(%d)", uint8(r))
}

// ParseRenderType maps "Interlace" or "Progressive" to a RenderType.
func ParseRenderType(name string) (RenderType, error) {
	switch name {
	case "Interlace":
		return Interlace, nil
	case "Progressive":
		return Progressive, nil
	}
	return Interlace, fmt.Errorf("%w: %q", ErrUnknownRenderType, name)
}

// ExplicitType records whether a profile was computed from a source or
// declared explicitly.
type ExplicitType uint8

const (
	// Computed is the default explicit type.
	Computed ExplicitType = iota
	Explicitly
)

// String implements fmt.Stringer.
func (e ExplicitType) String() string {
	switch e {
	case Computed:
		return "Computed"
	case Explicitly:
		return "Explicitly"
	}
	return fmt.Sprintf("ExplicitType(%d)", uint8(e))
}

// ParseExplicitType maps "Computed" or "Explicitly" to an ExplicitType.
func ParseExplicitType(name string) (ExplicitType, error) {
	switch name {
	case "Computed":
		return Computed, nil
	case "Explicitly":
		return Explicitly, nil
	}
	return Computed, fmt.Errorf("%w: %q", ErrUnknownExplicitType, name)
}

// Profile aggregates the base properties of a video format.
type Profile struct {
	Frame         geometry.Frame   `json:"frame"`
	FrameRate     Rational         `json:"frame_rate"`
	SampleAspect  Rational         `json:"sample_aspect"`
	DisplayAspect Rational         `json:"display_aspect"`
	ColorSpace    color.ColorSpace `json:"color_space"`
	ExplicitType  ExplicitType     `json:"explicit_type"`
	RenderType    RenderType       `json:"render_type"`
}

// FPS returns the frame rate as a float.
func (p Profile) FPS() float32 {
	return p.FrameRate.Number / p.FrameRate.Denominator
}

// SAR returns the sample aspect ratio as a float.
func (p Profile) SAR() float32 {
	return p.SampleAspect.Number / p.SampleAspect.Denominator
}

// DAR returns the display aspect ratio as a float.
//
// The display aspect number is divided by the sample aspect denominator.
// Existing consumers depend on this; do not change it without auditing them.
func (p Profile) DAR() float32 {
	return p.DisplayAspect.Number / p.SampleAspect.Denominator
}

// Validate reports ratios whose denominators are zero. It is never called
// implicitly.
func (p Profile) Validate() error {
	var errs []error
	if p.FrameRate.IsZeroDenominator() {
		errs = append(errs, fmt.Errorf("frame_rate: %w", ErrZeroDenominator))
	}
	if p.SampleAspect.IsZeroDenominator() {
		errs = append(errs, fmt.Errorf("sample_aspect: %w", ErrZeroDenominator))
	}
	if p.DisplayAspect.IsZeroDenominator() {
		errs = append(errs, fmt.Errorf("display_aspect: %w", ErrZeroDenominator))
	}
	return errors.Join(errs...)
}
