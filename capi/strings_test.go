package main

import (
	"strings"
	"testing"

	"github.com/opd-ai/mediacore/limits"
	"github.com/opd-ai/mediacore/property"
)

// TestInsertIntoNullStore checks that a valid key and value sent to the
// null handle change nothing
func TestInsertIntoNullStore(t *testing.T) {
	h := mc_property_store_new()
	defer mc_property_store_free(h)

	key := cString("gain")
	defer freeCString(key)
	value := intValue(5)

	mc_property_store_insert(0, key, value)
	mc_video_frame_set_property(0, key, value)
	if got := mc_property_store_len(h); got != 0 {
		t.Fatalf("insert into null store touched a live store: len %d", got)
	}

	mc_property_store_insert(h, key, value)
	if got := mc_property_store_len(h); got != 1 {
		t.Fatalf("len = %d after valid insert, want 1", got)
	}

	out := newCValue()
	if !mc_property_store_get(h, key, out) {
		t.Fatal("mc_property_store_get(gain) reported absent")
	}
	if uint32(out.kind) != uint32(property.KindInt) || int32(out.i32) != 5 {
		t.Errorf("got kind %d value %d, want int 5", uint32(out.kind), int32(out.i32))
	}
	mc_value_release(out)
}

// TestInvalidStringsAreDiscarded tests that bad keys and string values
// leave the store unchanged
func TestInvalidStringsAreDiscarded(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid UTF-8 key", key: "\xff\xfe", value: "ok"},
		{name: "invalid UTF-8 value", key: "gain", value: "\xc3\x28"},
		{name: "oversized key", key: strings.Repeat("k", limits.MaxPropertyKey+1), value: "ok"},
		{name: "oversized value", key: "gain", value: strings.Repeat("v", limits.MaxStringValue+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mc_property_store_new()
			defer mc_property_store_free(h)

			seed := cString("seed")
			defer freeCString(seed)
			mc_property_store_insert(h, seed, intValue(1))

			key := cString(tt.key)
			defer freeCString(key)
			str := cString(tt.value)
			defer freeCString(str)

			mc_property_store_insert(h, key, stringValue(str))
			if got := mc_property_store_len(h); got != 1 {
				t.Errorf("len = %d after discarded insert, want 1", got)
			}

			mc_property_store_remove(h, key)
			if got := mc_property_store_len(h); got != 1 {
				t.Errorf("len = %d after discarded remove, want 1", got)
			}
		})
	}
}

func TestKeyAtLimitIsAccepted(t *testing.T) {
	h := mc_property_store_new()
	defer mc_property_store_free(h)

	key := cString(strings.Repeat("k", limits.MaxPropertyKey))
	defer freeCString(key)
	mc_property_store_insert(h, key, intValue(1))
	if got := mc_property_store_len(h); got != 1 {
		t.Errorf("len = %d, want 1", got)
	}
}

// TestStringValueRoundTrip tests string values through insert, get,
// release and remove
func TestStringValueRoundTrip(t *testing.T) {
	h := mc_property_store_new()
	defer mc_property_store_free(h)

	key := cString("source")
	defer freeCString(key)
	str := cString("camera-1")
	defer freeCString(str)

	mc_property_store_insert(h, key, stringValue(str))

	out := newCValue()
	if !mc_property_store_get(h, key, out) {
		t.Fatal("mc_property_store_get(source) reported absent")
	}
	if uint32(out.kind) != uint32(property.KindString) {
		t.Fatalf("kind = %d, want string", uint32(out.kind))
	}
	if got := goStringOf(out.str); got != "camera-1" {
		t.Errorf("value = %q, want camera-1", got)
	}
	if out.str == str {
		t.Error("returned string must be a fresh allocation")
	}
	mc_value_release(out)
	if out.str != nil || uint32(out.kind) != uint32(property.KindNone) {
		t.Error("mc_value_release should reset the value")
	}

	mc_property_store_remove(h, key)
	if got := mc_property_store_len(h); got != 0 {
		t.Errorf("len = %d after remove, want 0", got)
	}
	if mc_property_store_get(h, key, out) {
		t.Error("removed key still present")
	}
}

// TestVideoFrameProperty tests set_property and get_property on a frame
func TestVideoFrameProperty(t *testing.T) {
	h := mc_video_frame_new()
	defer mc_video_frame_free(h)

	key := cString("gain")
	defer freeCString(key)
	mc_video_frame_set_property(h, key, intValue(3))

	out := newCValue()
	if !mc_video_frame_get_property(h, key, out) || int32(out.i32) != 3 {
		t.Errorf("frame property gain = %d, want 3", int32(out.i32))
	}
	mc_value_release(out)
}

// TestPresetGet tests looking up a built-in preset by name
func TestPresetGet(t *testing.T) {
	name := cString("HD - 1080p30")
	defer freeCString(name)

	p := newCProfile()
	if !mc_preset_get(name, p) {
		t.Fatal("HD - 1080p30 not found")
	}
	if got := float32(mc_profile_fps(p)); got != 30 {
		t.Errorf("fps = %v, want 30", got)
	}
	if float32(p.frame.width) != 1920 || float32(p.frame.height) != 1080 {
		t.Errorf("frame = %vx%v, want 1920x1080", float32(p.frame.width), float32(p.frame.height))
	}

	missing := cString("HD - 1080p31")
	defer freeCString(missing)
	if mc_preset_get(missing, p) {
		t.Error("unknown preset reported present")
	}
}
