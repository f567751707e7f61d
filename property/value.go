// Package property implements the typed metadata bag attached to pipeline
// objects: a closed set of value variants stored under string keys.
package property

import (
	"bytes"
	"fmt"

	"github.com/opd-ai/mediacore/color"
	"github.com/opd-ai/mediacore/geometry"
)

// Kind tags the active variant of a Value.
type Kind uint8

const (
	// KindNone marks an unset value. It is the zero Kind.
	KindNone Kind = iota
	KindInt
	KindInt64
	KindDouble
	KindString
	KindPosition
	KindRect
	KindBuffer
	KindColor
)

var kindNames = [...]string{
	KindNone:     "none",
	KindInt:      "int",
	KindInt64:    "int64",
	KindDouble:   "double",
	KindString:   "string",
	KindPosition: "position",
	KindRect:     "rect",
	KindBuffer:   "buffer",
	KindColor:    "color",
}

// String returns the lower-case variant name used in encoded values.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func parseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindNone, false
}

// Value is a self-describing property value. The set of implementations is
// closed to this package; callers switch on the concrete type or on Kind.
//
// A value never changes variant in place: storing a new value under a key
// replaces the whole payload.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	// None is the unset value.
	None struct{}
	// Int holds a 32-bit integer.
	Int int32
	// Int64 holds a 64-bit integer.
	Int64 int64
	// Double holds a single precision float. The name is kept for
	// compatibility with existing foreign consumers.
	Double float32
	// String holds UTF-8 text.
	String string
	// Position holds a geometry.Position.
	Position geometry.Position
	// Rect holds a geometry.Rect.
	Rect geometry.Rect
	// Buffer holds raw bytes.
	Buffer []byte
	// Color holds a color space tag.
	Color color.ColorSpace
)

func (None) Kind() Kind     { return KindNone }
func (Int) Kind() Kind      { return KindInt }
func (Int64) Kind() Kind    { return KindInt64 }
func (Double) Kind() Kind   { return KindDouble }
func (String) Kind() Kind   { return KindString }
func (Position) Kind() Kind { return KindPosition }
func (Rect) Kind() Kind     { return KindRect }
func (Buffer) Kind() Kind   { return KindBuffer }
func (Color) Kind() Kind    { return KindColor }

func (None) isValue()     {}
func (Int) isValue()      {}
func (Int64) isValue()    {}
func (Double) isValue()   {}
func (String) isValue()   {}
func (Position) isValue() {}
func (Rect) isValue()     {}
func (Buffer) isValue()   {}
func (Color) isValue()    {}

// Clone returns a copy of v that shares no memory with it. A nil Value
// clones to None.
func Clone(v Value) Value {
	switch val := v.(type) {
	case nil:
		return None{}
	case Buffer:
		if val == nil {
			return Buffer(nil)
		}
		return append(Buffer(make([]byte, 0, len(val))), val...)
	default:
		return v
	}
}

// Equal reports whether a and b hold the same variant and payload.
// nil compares equal to None.
func Equal(a, b Value) bool {
	a, b = normalize(a), normalize(b)
	if a.Kind() != b.Kind() {
		return false
	}
	if ab, ok := a.(Buffer); ok {
		return bytes.Equal(ab, b.(Buffer))
	}
	return a == b
}

func normalize(v Value) Value {
	if v == nil {
		return None{}
	}
	return v
}
