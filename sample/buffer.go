// Package sample provides owned sample arrays of differing element width
// behind one closed Buffer type, with raw byte access for zero-copy handoff
// to foreign consumers.
//
// The memory returned by Bytes and Pointer is only valid while the Buffer
// is alive; a foreign holder must not outlive it and must stay within
// LenBytes.
package sample

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrUnknownKind indicates an element kind outside the declared set.
	ErrUnknownKind = errors.New("unknown sample kind")

	// ErrMisaligned indicates a byte slice whose length or address does not
	// fit the requested element width.
	ErrMisaligned = errors.New("byte slice misaligned for sample kind")

	// ErrNegativeLength indicates a negative element count.
	ErrNegativeLength = errors.New("negative sample buffer length")
)

// Kind tags the element type of a Buffer.
type Kind uint8

const (
	KindU8 Kind = iota
	KindI16
	KindI32
	KindF32
)

// Width returns the element size in bytes, or 0 for unknown kinds.
func (k Kind) Width() int {
	switch k {
	case KindU8:
		return 1
	case KindI16:
		return 2
	case KindI32, KindF32:
		return 4
	}
	return 0
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindF32:
		return "f32"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Buffer is one of U8, I16, I32 or F32. The set is closed.
type Buffer interface {
	Kind() Kind
	// LenElems returns the element count.
	LenElems() int
	// LenBytes returns LenElems times the element width.
	LenBytes() int
	// Bytes returns a byte view over the elements. Writes through it are
	// visible in the buffer.
	Bytes() []byte
	// Pointer returns the address of the first element, or nil when empty.
	Pointer() unsafe.Pointer

	isBuffer()
}

type (
	U8  []uint8
	I16 []int16
	I32 []int32
	F32 []float32
)

func (U8) Kind() Kind  { return KindU8 }
func (I16) Kind() Kind { return KindI16 }
func (I32) Kind() Kind { return KindI32 }
func (F32) Kind() Kind { return KindF32 }

func (b U8) LenElems() int  { return len(b) }
func (b I16) LenElems() int { return len(b) }
func (b I32) LenElems() int { return len(b) }
func (b F32) LenElems() int { return len(b) }

func (b U8) LenBytes() int  { return len(b) }
func (b I16) LenBytes() int { return len(b) * int(unsafe.Sizeof(int16(0))) }
func (b I32) LenBytes() int { return len(b) * int(unsafe.Sizeof(int32(0))) }
func (b F32) LenBytes() int { return len(b) * int(unsafe.Sizeof(float32(0))) }

func (b U8) Pointer() unsafe.Pointer  { return dataPointer(b) }
func (b I16) Pointer() unsafe.Pointer { return dataPointer(b) }
func (b I32) Pointer() unsafe.Pointer { return dataPointer(b) }
func (b F32) Pointer() unsafe.Pointer { return dataPointer(b) }

func (b U8) Bytes() []byte  { return b }
func (b I16) Bytes() []byte { return byteView(b.Pointer(), b.LenBytes()) }
func (b I32) Bytes() []byte { return byteView(b.Pointer(), b.LenBytes()) }
func (b F32) Bytes() []byte { return byteView(b.Pointer(), b.LenBytes()) }

func (U8) isBuffer()  {}
func (I16) isBuffer() {}
func (I32) isBuffer() {}
func (F32) isBuffer() {}

func dataPointer[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}

func byteView(p unsafe.Pointer, n int) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// New allocates a zeroed buffer of n elements of the given kind.
func New(kind Kind, n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	switch kind {
	case KindU8:
		return make(U8, n), nil
	case KindI16:
		return make(I16, n), nil
	case KindI32:
		return make(I32, n), nil
	case KindF32:
		return make(F32, n), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
}

// FromBytes reinterprets p as elements of kind without copying. The
// returned Buffer aliases p; p must outlive it.
func FromBytes(kind Kind, p []byte) (Buffer, error) {
	width := kind.Width()
	if width == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
	if len(p)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %s", ErrMisaligned, len(p), kind)
	}
	n := len(p) / width
	if n == 0 {
		return New(kind, 0)
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	if uintptr(base)%uintptr(width) != 0 {
		return nil, fmt.Errorf("%w: address not %d-byte aligned", ErrMisaligned, width)
	}

	switch kind {
	case KindI16:
		return I16(unsafe.Slice((*int16)(base), n)), nil
	case KindI32:
		return I32(unsafe.Slice((*int32)(base), n)), nil
	case KindF32:
		return F32(unsafe.Slice((*float32)(base), n)), nil
	}
	return U8(p), nil
}
