package main

/*
#include <stdlib.h>
#include "mediacore.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/opd-ai/mediacore/limits"
	"github.com/opd-ai/mediacore/sample"
)

// sampleBuffer is a sample.Buffer over C-allocated storage, so C may keep
// the data pointer until the handle is freed.
type sampleBuffer struct {
	buf sample.Buffer
	mem unsafe.Pointer
}

var samples = newTable[*sampleBuffer]()

func newSampleBuffer(kind sample.Kind, elems int) (handle, error) {
	if err := limits.ValidateSampleElements(elems); err != nil {
		return 0, err
	}
	width := kind.Width()
	if width == 0 {
		return 0, fmt.Errorf("%w: %d", sample.ErrUnknownKind, uint8(kind))
	}
	if elems == 0 {
		buf, err := sample.New(kind, 0)
		if err != nil {
			return 0, err
		}
		return samples.add(&sampleBuffer{buf: buf}), nil
	}

	mem := C.calloc(C.size_t(elems), C.size_t(width))
	if mem == nil {
		return 0, fmt.Errorf("calloc %d x %d bytes failed", elems, width)
	}
	buf, err := sample.FromBytes(kind, unsafe.Slice((*byte)(mem), elems*width))
	if err != nil {
		C.free(mem)
		return 0, err
	}
	return samples.add(&sampleBuffer{buf: buf, mem: mem}), nil
}

func freeSampleBuffer(h handle) {
	if b, ok := samples.remove(h); ok && b.mem != nil {
		C.free(b.mem)
	}
}

// mc_sample_buffer_new allocates a zeroed buffer of elems samples of
// kind (MC_SAMPLE_*). It returns 0 for an unknown kind or an oversized
// request.
//
//export mc_sample_buffer_new
func mc_sample_buffer_new(kind C.uint32_t, elems C.size_t) C.mc_handle {
	if uint64(elems) > limits.MaxSampleElements {
		discard("mc_sample_buffer_new", fmt.Errorf("%w: %d elements", limits.ErrTooLarge, uint64(elems)))
		return 0
	}
	if uint32(kind) > 0xff {
		discard("mc_sample_buffer_new", fmt.Errorf("%w: %d", sample.ErrUnknownKind, uint32(kind)))
		return 0
	}
	h, err := newSampleBuffer(sample.Kind(kind), int(elems))
	if err != nil {
		discard("mc_sample_buffer_new", err)
		return 0
	}
	return C.mc_handle(h)
}

//export mc_sample_buffer_free
func mc_sample_buffer_free(h C.mc_handle) {
	freeSampleBuffer(handle(h))
}

//export mc_sample_buffer_len_elems
func mc_sample_buffer_len_elems(h C.mc_handle) C.size_t {
	b, ok := samples.get(handle(h))
	if !ok {
		return 0
	}
	return C.size_t(b.buf.LenElems())
}

//export mc_sample_buffer_len_bytes
func mc_sample_buffer_len_bytes(h C.mc_handle) C.size_t {
	b, ok := samples.get(handle(h))
	if !ok {
		return 0
	}
	return C.size_t(b.buf.LenBytes())
}

// mc_sample_buffer_data returns the first element, or NULL for an empty
// buffer or unknown handle. The pointer is valid until the handle is freed.
//
//export mc_sample_buffer_data
func mc_sample_buffer_data(h C.mc_handle) unsafe.Pointer {
	b, ok := samples.get(handle(h))
	if !ok || b.mem == nil {
		return nil
	}
	return b.buf.Pointer()
}
