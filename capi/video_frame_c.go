package main

/*
#include "mediacore.h"
*/
import "C"

import (
	"github.com/opd-ai/mediacore"
	"github.com/opd-ai/mediacore/property"
)

var videoFrames = newTable[*mediacore.Frame]()

func videoFrameSetProperty(h handle, key string, v property.Value) error {
	f, ok := videoFrames.get(h)
	if !ok {
		return ErrUnknownHandle
	}
	f.Properties.Set(key, property.Clone(v))
	return nil
}

//export mc_video_frame_new
func mc_video_frame_new() C.mc_handle {
	return C.mc_handle(videoFrames.add(mediacore.NewFrame()))
}

//export mc_video_frame_free
func mc_video_frame_free(h C.mc_handle) {
	videoFrames.remove(handle(h))
}

//export mc_video_frame_get_profile
func mc_video_frame_get_profile(h C.mc_handle) C.mc_opt_profile {
	f, ok := videoFrames.get(handle(h))
	if !ok {
		return C.mc_opt_profile{}
	}
	return C.mc_opt_profile{present: C.bool(true), value: profileToC(f.Profile)}
}

//export mc_video_frame_get_aspect_ratio
func mc_video_frame_get_aspect_ratio(h C.mc_handle) C.mc_opt_float {
	f, ok := videoFrames.get(handle(h))
	if !ok {
		return optFloat(0, false)
	}
	return optFloat(f.AspectRatio, true)
}

//export mc_video_frame_get_viewport
func mc_video_frame_get_viewport(h C.mc_handle) C.mc_opt_frame {
	f, ok := videoFrames.get(handle(h))
	if !ok {
		return C.mc_opt_frame{}
	}
	return C.mc_opt_frame{present: C.bool(true), value: frameToC(f.Viewport)}
}

//export mc_video_frame_get_position
func mc_video_frame_get_position(h C.mc_handle) C.mc_opt_position {
	f, ok := videoFrames.get(handle(h))
	if !ok {
		return C.mc_opt_position{}
	}
	return C.mc_opt_position{present: C.bool(true), value: positionToC(f.Position())}
}

//export mc_video_frame_get_speed
func mc_video_frame_get_speed(h C.mc_handle) C.mc_opt_int8 {
	f, ok := videoFrames.get(handle(h))
	if !ok {
		return C.mc_opt_int8{}
	}
	return C.mc_opt_int8{present: C.bool(true), value: C.int8_t(f.Speed())}
}

//export mc_video_frame_set_profile
func mc_video_frame_set_profile(h C.mc_handle, p *C.mc_profile) {
	if p == nil {
		discard("mc_video_frame_set_profile", ErrNullPointer)
		return
	}
	if f, ok := videoFrames.get(handle(h)); ok {
		f.Profile = profileFromC(p)
	}
}

//export mc_video_frame_set_aspect_ratio
func mc_video_frame_set_aspect_ratio(h C.mc_handle, aspectRatio C.float) {
	if f, ok := videoFrames.get(handle(h)); ok {
		f.AspectRatio = float32(aspectRatio)
	}
}

//export mc_video_frame_set_viewport
func mc_video_frame_set_viewport(h C.mc_handle, viewport C.mc_frame) {
	if f, ok := videoFrames.get(handle(h)); ok {
		f.Viewport = frameFromC(viewport)
	}
}

//export mc_video_frame_set_position
func mc_video_frame_set_position(h C.mc_handle, position C.mc_position) {
	if f, ok := videoFrames.get(handle(h)); ok {
		f.SetPosition(positionFromC(position))
	}
}

//export mc_video_frame_set_speed
func mc_video_frame_set_speed(h C.mc_handle, speed C.int8_t) {
	if f, ok := videoFrames.get(handle(h)); ok {
		f.SetSpeed(int8(speed))
	}
}

//export mc_video_frame_set_property
func mc_video_frame_set_property(h C.mc_handle, key *C.char, value *C.mc_value) {
	k, err := goKey(key)
	if err != nil {
		discard("mc_video_frame_set_property", err)
		return
	}
	v, err := valueFromC(value)
	if err != nil {
		discard("mc_video_frame_set_property", err)
		return
	}
	if err := videoFrameSetProperty(handle(h), k, v); err != nil {
		discard("mc_video_frame_set_property", err)
	}
}

//export mc_video_frame_get_property
func mc_video_frame_get_property(h C.mc_handle, key *C.char, out *C.mc_value) C.bool {
	if out == nil {
		discard("mc_video_frame_get_property", ErrNullPointer)
		return false
	}
	k, err := goKey(key)
	if err != nil {
		discard("mc_video_frame_get_property", err)
		return false
	}
	f, ok := videoFrames.get(handle(h))
	if !ok {
		return false
	}
	v, ok := f.Properties.Get(k)
	if !ok {
		return false
	}
	valueToC(v, out)
	return true
}
