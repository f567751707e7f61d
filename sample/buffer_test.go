package sample

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLengths(t *testing.T) {
	tests := []struct {
		name      string
		buf       Buffer
		wantElems int
		wantBytes int
		wantKind  Kind
	}{
		{"u8", U8{1, 2, 3}, 3, 3, KindU8},
		{"i16", I16{1, 2, 3}, 3, 6, KindI16},
		{"i32", I32{1, 2, 3, 4}, 4, 16, KindI32},
		{"f32", F32{0.5, 1.5}, 2, 8, KindF32},
		{"empty i32", I32{}, 0, 0, KindI32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.buf.Kind())
			assert.Equal(t, tt.wantElems, tt.buf.LenElems())
			assert.Equal(t, tt.wantBytes, tt.buf.LenBytes())
			assert.Len(t, tt.buf.Bytes(), tt.wantBytes)
			assert.Equal(t, tt.wantBytes, tt.buf.LenElems()*tt.wantKind.Width())
		})
	}
}

func TestBytesIsZeroCopy(t *testing.T) {
	buf := I32{0, 0}
	raw := buf.Bytes()
	require.Len(t, raw, 8)

	binary.NativeEndian.PutUint32(raw[4:], 0xdeadbeef)
	assert.Equal(t, int32(-559038737), buf[1])

	assert.Equal(t, unsafe.Pointer(&buf[0]), buf.Pointer())
	assert.Equal(t, unsafe.Pointer(&raw[0]), buf.Pointer())
}

func TestF32BytesView(t *testing.T) {
	buf := F32{1.0}
	bits := binary.NativeEndian.Uint32(buf.Bytes())
	assert.Equal(t, math.Float32bits(1.0), bits)
}

func TestPointerNilWhenEmpty(t *testing.T) {
	assert.Nil(t, U8(nil).Pointer())
	assert.Nil(t, I16(nil).Bytes())
	assert.Nil(t, make(F32, 0).Pointer())
}

func TestNew(t *testing.T) {
	for _, k := range []Kind{KindU8, KindI16, KindI32, KindF32} {
		t.Run(k.String(), func(t *testing.T) {
			buf, err := New(k, 5)
			require.NoError(t, err)
			assert.Equal(t, k, buf.Kind())
			assert.Equal(t, 5, buf.LenElems())
			assert.Equal(t, 5*k.Width(), buf.LenBytes())
		})
	}

	_, err := New(Kind(7), 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.Equal(t, 0, Kind(7).Width())
}

func TestNewRejectsNegativeLength(t *testing.T) {
	for _, k := range []Kind{KindU8, KindI16, KindI32, KindF32} {
		buf, err := New(k, -1)
		assert.ErrorIs(t, err, ErrNegativeLength, k.String())
		assert.Nil(t, buf)
	}
}

func TestFromBytesAliases(t *testing.T) {
	backing := make([]int32, 3)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), 12)

	buf, err := FromBytes(KindI32, raw)
	require.NoError(t, err)
	require.Equal(t, 3, buf.LenElems())

	buf.(I32)[2] = 42
	assert.Equal(t, int32(42), backing[2])
}

func TestFromBytesErrors(t *testing.T) {
	_, err := FromBytes(KindI16, make([]byte, 3))
	assert.ErrorIs(t, err, ErrMisaligned)

	_, err = FromBytes(Kind(9), make([]byte, 4))
	assert.ErrorIs(t, err, ErrUnknownKind)

	empty, err := FromBytes(KindF32, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.LenElems())

	u8, err := FromBytes(KindU8, []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, U8{1, 2}, u8)
}
