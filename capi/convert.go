package main

/*
#include <stdlib.h>
#include <string.h>
#include "mediacore.h"
*/
import "C"

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/opd-ai/mediacore/color"
	"github.com/opd-ai/mediacore/geometry"
	"github.com/opd-ai/mediacore/internal/logging"
	"github.com/opd-ai/mediacore/limits"
	"github.com/opd-ai/mediacore/profile"
	"github.com/opd-ai/mediacore/property"
)

// discard logs why an exported call was dropped.
func discard(function string, err error) {
	logging.New("capi", function).WithError(err).Debug("Operation discarded")
}

// readCString copies a NUL-terminated C string, reading at most limit
// bytes. Longer strings come back cut at limit for the caller's size check.
func readCString(p *C.char, limit int) (string, error) {
	if p == nil {
		return "", ErrNullPointer
	}
	n := int(C.strnlen(p, C.size_t(limit)))
	return C.GoStringN(p, C.int(n)), nil
}

func checkUTF8(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	return nil
}

func goKey(p *C.char) (string, error) {
	key, err := readCString(p, limits.MaxPropertyKey+1)
	if err == nil {
		err = limits.ValidateKey(key)
	}
	if err == nil {
		err = checkUTF8(key)
	}
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	return key, nil
}

func goStringValue(p *C.char) (string, error) {
	s, err := readCString(p, limits.MaxStringValue+1)
	if err != nil {
		return "", fmt.Errorf("string value: %w", err)
	}
	if err := limits.ValidateString(len(s)); err != nil {
		return "", err
	}
	if err := checkUTF8(s); err != nil {
		return "", fmt.Errorf("string value: %w", err)
	}
	return s, nil
}

func valueFromC(v *C.mc_value) (property.Value, error) {
	if v == nil {
		return nil, ErrNullPointer
	}
	if v.kind > C.MC_VALUE_COLOR {
		return nil, fmt.Errorf("%w: %d", ErrUnknownValueKind, uint32(v.kind))
	}
	switch property.Kind(v.kind) {
	case property.KindNone:
		return property.None{}, nil
	case property.KindInt:
		return property.Int(v.i32), nil
	case property.KindInt64:
		return property.Int64(v.i64), nil
	case property.KindDouble:
		return property.Double(v.f32), nil
	case property.KindString:
		s, err := goStringValue(v.str)
		if err != nil {
			return nil, err
		}
		return property.String(s), nil
	case property.KindPosition:
		return property.Position(positionFromC(v.position)), nil
	case property.KindRect:
		return property.Rect(rectFromC(v.rect)), nil
	case property.KindBuffer:
		n := int(v.len)
		if err := limits.ValidateBuffer(n); err != nil {
			return nil, err
		}
		if n > 0 && v.data == nil {
			return nil, fmt.Errorf("buffer value: %w", ErrNullPointer)
		}
		// GoBytes copies, so the store never aliases caller memory.
		return property.Buffer(C.GoBytes(unsafe.Pointer(v.data), C.int(n))), nil
	case property.KindColor:
		c := color.ColorSpace(v.color)
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidColorSpace, uint8(v.color))
		}
		return property.Color(c), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownValueKind, uint32(v.kind))
}

// valueToC fills out from v. Strings and buffers are copied into C memory
// that the caller releases with mc_value_release.
func valueToC(v property.Value, out *C.mc_value) {
	*out = C.mc_value{kind: C.uint32_t(v.Kind())}
	switch v := v.(type) {
	case property.Int:
		out.i32 = C.int32_t(v)
	case property.Int64:
		out.i64 = C.int64_t(v)
	case property.Double:
		out.f32 = C.float(v)
	case property.String:
		out.str = C.CString(string(v))
	case property.Position:
		out.position = positionToC(geometry.Position(v))
	case property.Rect:
		out.rect = rectToC(geometry.Rect(v))
	case property.Buffer:
		if len(v) > 0 {
			out.data = (*C.uint8_t)(C.CBytes(v))
			out.len = C.size_t(len(v))
		}
	case property.Color:
		out.color = C.uint8_t(v)
	}
}

func positionFromC(p C.mc_position) geometry.Position {
	return geometry.Position{X: float32(p.x), Y: float32(p.y)}
}

func positionToC(p geometry.Position) C.mc_position {
	return C.mc_position{x: C.float(p.X), y: C.float(p.Y)}
}

func rectFromC(r C.mc_rect) geometry.Rect {
	return geometry.Rect{
		Top:    float32(r.top),
		Left:   float32(r.left),
		Right:  float32(r.right),
		Bottom: float32(r.bottom),
	}
}

func rectToC(r geometry.Rect) C.mc_rect {
	return C.mc_rect{
		top:    C.float(r.Top),
		left:   C.float(r.Left),
		right:  C.float(r.Right),
		bottom: C.float(r.Bottom),
	}
}

func frameFromC(f C.mc_frame) geometry.Frame {
	return geometry.Frame{Width: float32(f.width), Height: float32(f.height)}
}

func frameToC(f geometry.Frame) C.mc_frame {
	return C.mc_frame{width: C.float(f.Width), height: C.float(f.Height)}
}

func rationalFromC(r C.mc_rational) profile.Rational {
	return profile.Rational{Number: float32(r.number), Denominator: float32(r.denominator)}
}

func rationalToC(r profile.Rational) C.mc_rational {
	return C.mc_rational{number: C.float(r.Number), denominator: C.float(r.Denominator)}
}

// profileFromC does not validate the enumeration tags; out-of-range values
// pass through the same way they would through profile.Builder.
func profileFromC(p *C.mc_profile) profile.Profile {
	return profile.NewBuilder().
		SetFrame(frameFromC(p.frame)).
		SetFrameRate(rationalFromC(p.frame_rate)).
		SetSampleAspect(rationalFromC(p.sample_aspect)).
		SetDisplayAspect(rationalFromC(p.display_aspect)).
		SetColorSpace(color.ColorSpace(p.color_space)).
		SetExplicitType(profile.ExplicitType(p.explicit_type)).
		SetRenderType(profile.RenderType(p.render_type)).
		Build()
}

func profileToC(p profile.Profile) C.mc_profile {
	return C.mc_profile{
		frame:          frameToC(p.Frame),
		frame_rate:     rationalToC(p.FrameRate),
		sample_aspect:  rationalToC(p.SampleAspect),
		display_aspect: rationalToC(p.DisplayAspect),
		color_space:    C.uint8_t(p.ColorSpace),
		explicit_type:  C.uint8_t(p.ExplicitType),
		render_type:    C.uint8_t(p.RenderType),
	}
}

func optFloat(v float32, ok bool) C.mc_opt_float {
	if !ok {
		return C.mc_opt_float{}
	}
	return C.mc_opt_float{present: C.bool(true), value: C.float(v)}
}
