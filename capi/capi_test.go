package main

import (
	"errors"
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/opd-ai/mediacore/color"
	"github.com/opd-ai/mediacore/geometry"
	"github.com/opd-ai/mediacore/limits"
	"github.com/opd-ai/mediacore/property"
	"github.com/opd-ai/mediacore/sample"
)

// TestNullHandlesAreIgnored checks that every entry point tolerates the null
// handle and NULL pointers without touching any live object.
func TestNullHandlesAreIgnored(t *testing.T) {
	h := mc_property_store_new()
	defer mc_property_store_free(h)
	if err := storeInsert(handle(h), "k", property.Int(1)); err != nil {
		t.Fatalf("storeInsert failed: %v", err)
	}

	mc_property_store_insert(0, nil, nil)
	mc_property_store_insert(h, nil, nil)
	mc_property_store_remove(h, nil)
	mc_property_store_remove(0, nil)
	mc_property_store_clear(0)
	mc_property_store_free(0)

	if got := mc_property_store_len(h); got != 1 {
		t.Errorf("store length = %d after null operations, want 1", got)
	}
	if got := mc_property_store_len(0); got != 0 {
		t.Errorf("mc_property_store_len(0) = %d, want 0", got)
	}
	if mc_property_store_get(h, nil, nil) {
		t.Error("mc_property_store_get with NULL out should fail")
	}

	mc_value_release(nil)
	mc_video_frame_set_profile(0, nil)
	mc_video_frame_set_property(0, nil, nil)
	mc_video_frame_free(0)
	mc_position_free(0)
	mc_rect_free(0)
	mc_frame_free(0)
	mc_sample_buffer_free(0)

	if mc_profile_fps(nil) != 0 || mc_profile_sar(nil) != 0 || mc_profile_dar(nil) != 0 {
		t.Error("profile helpers should return 0 for NULL")
	}
	if mc_preset_get(nil, nil) {
		t.Error("mc_preset_get(NULL, NULL) should fail")
	}
	if mc_sample_buffer_data(0) != nil {
		t.Error("mc_sample_buffer_data(0) should be NULL")
	}
}

// TestPropertyStoreRoundTrip tests insert, get, remove and clear through
// handles
func TestPropertyStoreRoundTrip(t *testing.T) {
	ch := mc_property_store_new()
	defer mc_property_store_free(ch)
	h := handle(ch)

	if err := storeInsert(h, "width", property.Int(1920)); err != nil {
		t.Fatalf("storeInsert failed: %v", err)
	}
	v, ok := storeGet(h, "width")
	if !ok || v != property.Int(1920) {
		t.Fatalf("storeGet(width) = %v, %v", v, ok)
	}

	if err := storeInsert(h, "width", property.String("wide")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	v, _ = storeGet(h, "width")
	if v != property.String("wide") {
		t.Errorf("overwrite: got %v, want String(wide)", v)
	}

	s, _ := stores.get(h)
	s.Set("other", property.Color(color.Bt709))
	if got := mc_property_store_len(ch); got != 2 {
		t.Errorf("len = %d, want 2", got)
	}

	removed, ok := s.Remove("width")
	if !ok || removed != property.String("wide") {
		t.Errorf("Remove(width) = %v, %v", removed, ok)
	}
	if _, ok := storeGet(h, "width"); ok {
		t.Error("width still present after remove")
	}
	if got := mc_property_store_len(ch); got != 1 {
		t.Errorf("len after remove = %d, want 1", got)
	}

	mc_property_store_clear(ch)
	if got := mc_property_store_len(ch); got != 0 {
		t.Errorf("len after clear = %d, want 0", got)
	}
}

// TestStoreInsertCopiesBuffers ensures the store never aliases caller memory
func TestStoreInsertCopiesBuffers(t *testing.T) {
	ch := mc_property_store_new()
	defer mc_property_store_free(ch)
	h := handle(ch)

	raw := []byte{1, 2, 3}
	if err := storeInsert(h, "blob", property.Buffer(raw)); err != nil {
		t.Fatalf("storeInsert failed: %v", err)
	}
	raw[0] = 9

	v, _ := storeGet(h, "blob")
	if got := v.(property.Buffer); got[0] != 1 {
		t.Errorf("stored buffer changed with caller memory: %v", got)
	}
}

// TestFreedHandleIsUnknown tests double free and use after free
func TestFreedHandleIsUnknown(t *testing.T) {
	h := mc_property_store_new()
	mc_property_store_free(h)
	mc_property_store_free(h)

	if err := storeInsert(handle(h), "k", property.None{}); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("insert after free: got %v, want ErrUnknownHandle", err)
	}
}

// TestHandlesAreKindSpecific ensures a handle of one kind does not resolve
// in another table
func TestHandlesAreKindSpecific(t *testing.T) {
	store := mc_property_store_new()
	defer mc_property_store_free(store)
	pos := mc_position_new(1, 2)
	defer mc_position_free(pos)

	if store == pos {
		t.Fatal("handles must be unique across kinds")
	}
	if mc_position_get_x(store).present {
		t.Error("store handle resolved as a position")
	}
	if got := mc_property_store_len(pos); got != 0 {
		t.Errorf("position handle resolved as a store: len %d", got)
	}
}

// TestGeometryHandles tests getters and setters on geometry handles
func TestGeometryHandles(t *testing.T) {
	pos := mc_position_new(1, 2)
	defer mc_position_free(pos)
	mc_position_set_y(pos, 5)
	if x := mc_position_get_x(pos); !bool(x.present) || float32(x.value) != 1 {
		t.Errorf("position x = %+v, want 1", x)
	}
	if y := mc_position_get_y(pos); float32(y.value) != 5 {
		t.Errorf("position y = %v, want 5", float32(y.value))
	}

	rect := mc_rect_new(10, 20, 30, 40)
	defer mc_rect_free(rect)
	mc_rect_set_left(rect, 0)
	r, _ := rects.get(handle(rect))
	if want := (geometry.Rect{Top: 10, Left: 0, Right: 30, Bottom: 40}); *r != want {
		t.Errorf("rect = %+v, want %+v", *r, want)
	}
	if b := mc_rect_get_bottom(rect); float32(b.value) != 40 {
		t.Errorf("rect bottom = %v, want 40", float32(b.value))
	}

	frame := mc_frame_new(1920, 1080)
	defer mc_frame_free(frame)
	if s := mc_frame_scale_width(frame, 3840); float32(s.value) != 2 {
		t.Errorf("scale width = %v, want 2", float32(s.value))
	}
	mc_frame_set_height(frame, 0)
	s := mc_frame_scale_height(frame, 1080)
	if !bool(s.present) || !math.IsInf(float64(s.value), 1) {
		t.Errorf("scale by zero height = %+v, want present +Inf", s)
	}

	mc_frame_free(frame)
	if mc_frame_get_width(frame).present {
		t.Error("freed frame still resolves")
	}
}

// TestVideoFrameHandle tests video frame accessors through handles
func TestVideoFrameHandle(t *testing.T) {
	h := mc_video_frame_new()
	defer mc_video_frame_free(h)

	if sp := mc_video_frame_get_speed(h); !bool(sp.present) || sp.value != 0 {
		t.Errorf("default speed = %+v", sp)
	}
	mc_video_frame_set_speed(h, -3)
	mc_video_frame_set_aspect_ratio(h, 1.5)

	if sp := mc_video_frame_get_speed(h); int8(sp.value) != -3 {
		t.Errorf("speed = %d, want -3", int8(sp.value))
	}
	if ar := mc_video_frame_get_aspect_ratio(h); float32(ar.value) != 1.5 {
		t.Errorf("aspect ratio = %v, want 1.5", float32(ar.value))
	}
	if p := mc_video_frame_get_profile(h); !bool(p.present) {
		t.Error("profile should be present on a live frame")
	}

	if err := videoFrameSetProperty(handle(h), "source", property.String("cam")); err != nil {
		t.Fatalf("videoFrameSetProperty failed: %v", err)
	}
	f, _ := videoFrames.get(handle(h))
	if v, ok := f.Properties.Get("source"); !ok || v != property.String("cam") {
		t.Errorf("frame property = %v, %v", v, ok)
	}

	if mc_video_frame_get_position(0).present || mc_video_frame_get_viewport(0).present {
		t.Error("null video frame should report absent fields")
	}
}

// TestPresetCount tests that the built-in catalog is reachable
func TestPresetCount(t *testing.T) {
	if got := mc_preset_count(); got == 0 {
		t.Error("expected built-in presets")
	}
}

// TestSampleBuffer tests allocation, lengths and release of sample buffers
func TestSampleBuffer(t *testing.T) {
	h := mc_sample_buffer_new(2, 4) // MC_SAMPLE_I32
	if h == 0 {
		t.Fatal("mc_sample_buffer_new returned the null handle")
	}
	defer mc_sample_buffer_free(h)

	if got := mc_sample_buffer_len_elems(h); got != 4 {
		t.Errorf("len_elems = %d, want 4", got)
	}
	if got := mc_sample_buffer_len_bytes(h); got != 16 {
		t.Errorf("len_bytes = %d, want 16", got)
	}

	data := mc_sample_buffer_data(h)
	if data == nil {
		t.Fatal("data pointer is NULL")
	}
	b, _ := samples.get(handle(h))
	b.buf.(sample.I32)[3] = 7
	if got := unsafe.Slice((*int32)(data), 4)[3]; got != 7 {
		t.Errorf("data pointer does not alias the buffer: got %d", got)
	}
}

func TestSampleBufferRejects(t *testing.T) {
	tests := []struct {
		name    string
		kind    sample.Kind
		elems   int
		wantErr error
	}{
		{"unknown kind", sample.Kind(9), 1, sample.ErrUnknownKind},
		{"too many elements", sample.KindU8, limits.MaxSampleElements + 1, limits.ErrTooLarge},
		{"negative", sample.KindF32, -1, limits.ErrNegativeSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := newSampleBuffer(tt.kind, tt.elems)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("newSampleBuffer() error = %v, want %v", err, tt.wantErr)
			}
			if h != 0 {
				t.Errorf("newSampleBuffer() handle = %d, want 0", h)
			}
		})
	}

	if mc_sample_buffer_new(1000, 1) != 0 {
		t.Error("out of range kind should return the null handle")
	}
}

func TestEmptySampleBuffer(t *testing.T) {
	h := mc_sample_buffer_new(3, 0) // MC_SAMPLE_F32
	if h == 0 {
		t.Fatal("zero-length buffer should still get a handle")
	}
	defer mc_sample_buffer_free(h)

	if mc_sample_buffer_data(h) != nil {
		t.Error("empty buffer should have a NULL data pointer")
	}
	if mc_sample_buffer_len_bytes(h) != 0 {
		t.Error("empty buffer should have zero bytes")
	}
}

// TestConcurrentHandleUse exercises the tables from many goroutines
func TestConcurrentHandleUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h := mc_position_new(1, 1)
				mc_position_set_x(h, 3)
				if x := mc_position_get_x(h); float32(x.value) != 3 {
					t.Errorf("position x = %v, want 3", float32(x.value))
				}
				mc_position_free(h)
			}
		}()
	}
	wg.Wait()
}
