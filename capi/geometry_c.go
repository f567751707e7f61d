package main

/*
#include "mediacore.h"
*/
import "C"

import (
	"github.com/opd-ai/mediacore/geometry"
)

var (
	positions = newTable[*geometry.Position]()
	rects     = newTable[*geometry.Rect]()
	frames    = newTable[*geometry.Frame]()
)

// floatField reads one coordinate of the object behind h.
func floatField[T any](t *table[*T], h C.mc_handle, field func(*T) float32) C.mc_opt_float {
	v, ok := t.get(handle(h))
	if !ok {
		return optFloat(0, false)
	}
	return optFloat(field(v), true)
}

// setFloatField writes one coordinate of the object behind h; unknown
// handles are ignored.
func setFloatField[T any](t *table[*T], h C.mc_handle, value C.float, field func(*T) *float32) {
	if v, ok := t.get(handle(h)); ok {
		*field(v) = float32(value)
	}
}

//export mc_position_new
func mc_position_new(x, y C.float) C.mc_handle {
	return C.mc_handle(positions.add(&geometry.Position{X: float32(x), Y: float32(y)}))
}

//export mc_position_free
func mc_position_free(h C.mc_handle) {
	positions.remove(handle(h))
}

//export mc_position_get_x
func mc_position_get_x(h C.mc_handle) C.mc_opt_float {
	return floatField(positions, h, func(p *geometry.Position) float32 { return p.X })
}

//export mc_position_get_y
func mc_position_get_y(h C.mc_handle) C.mc_opt_float {
	return floatField(positions, h, func(p *geometry.Position) float32 { return p.Y })
}

//export mc_position_set_x
func mc_position_set_x(h C.mc_handle, x C.float) {
	setFloatField(positions, h, x, func(p *geometry.Position) *float32 { return &p.X })
}

//export mc_position_set_y
func mc_position_set_y(h C.mc_handle, y C.float) {
	setFloatField(positions, h, y, func(p *geometry.Position) *float32 { return &p.Y })
}

//export mc_rect_new
func mc_rect_new(top, left, right, bottom C.float) C.mc_handle {
	return C.mc_handle(rects.add(&geometry.Rect{
		Top:    float32(top),
		Left:   float32(left),
		Right:  float32(right),
		Bottom: float32(bottom),
	}))
}

//export mc_rect_free
func mc_rect_free(h C.mc_handle) {
	rects.remove(handle(h))
}

//export mc_rect_get_top
func mc_rect_get_top(h C.mc_handle) C.mc_opt_float {
	return floatField(rects, h, func(r *geometry.Rect) float32 { return r.Top })
}

//export mc_rect_get_left
func mc_rect_get_left(h C.mc_handle) C.mc_opt_float {
	return floatField(rects, h, func(r *geometry.Rect) float32 { return r.Left })
}

//export mc_rect_get_right
func mc_rect_get_right(h C.mc_handle) C.mc_opt_float {
	return floatField(rects, h, func(r *geometry.Rect) float32 { return r.Right })
}

//export mc_rect_get_bottom
func mc_rect_get_bottom(h C.mc_handle) C.mc_opt_float {
	return floatField(rects, h, func(r *geometry.Rect) float32 { return r.Bottom })
}

//export mc_rect_set_top
func mc_rect_set_top(h C.mc_handle, v C.float) {
	setFloatField(rects, h, v, func(r *geometry.Rect) *float32 { return &r.Top })
}

//export mc_rect_set_left
func mc_rect_set_left(h C.mc_handle, v C.float) {
	setFloatField(rects, h, v, func(r *geometry.Rect) *float32 { return &r.Left })
}

//export mc_rect_set_right
func mc_rect_set_right(h C.mc_handle, v C.float) {
	setFloatField(rects, h, v, func(r *geometry.Rect) *float32 { return &r.Right })
}

//export mc_rect_set_bottom
func mc_rect_set_bottom(h C.mc_handle, v C.float) {
	setFloatField(rects, h, v, func(r *geometry.Rect) *float32 { return &r.Bottom })
}

//export mc_frame_new
func mc_frame_new(width, height C.float) C.mc_handle {
	return C.mc_handle(frames.add(&geometry.Frame{Width: float32(width), Height: float32(height)}))
}

//export mc_frame_free
func mc_frame_free(h C.mc_handle) {
	frames.remove(handle(h))
}

//export mc_frame_get_width
func mc_frame_get_width(h C.mc_handle) C.mc_opt_float {
	return floatField(frames, h, func(f *geometry.Frame) float32 { return f.Width })
}

//export mc_frame_get_height
func mc_frame_get_height(h C.mc_handle) C.mc_opt_float {
	return floatField(frames, h, func(f *geometry.Frame) float32 { return f.Height })
}

//export mc_frame_set_width
func mc_frame_set_width(h C.mc_handle, v C.float) {
	setFloatField(frames, h, v, func(f *geometry.Frame) *float32 { return &f.Width })
}

//export mc_frame_set_height
func mc_frame_set_height(h C.mc_handle, v C.float) {
	setFloatField(frames, h, v, func(f *geometry.Frame) *float32 { return &f.Height })
}

// mc_frame_scale_width returns width divided by the frame's width. A zero
// frame width yields an infinite or NaN value, not an absent one.
//
//export mc_frame_scale_width
func mc_frame_scale_width(h C.mc_handle, width C.float) C.mc_opt_float {
	return floatField(frames, h, func(f *geometry.Frame) float32 { return f.ScaleWidth(float32(width)) })
}

//export mc_frame_scale_height
func mc_frame_scale_height(h C.mc_handle, height C.float) C.mc_opt_float {
	return floatField(frames, h, func(f *geometry.Frame) float32 { return f.ScaleHeight(float32(height)) })
}
