package main

/*
#include "mediacore.h"
*/
import "C"

import (
	"github.com/opd-ai/mediacore/preset"
)

// Profile helpers return 0 for a NULL profile. Division by a zero
// denominator is not guarded.

//export mc_profile_fps
func mc_profile_fps(p *C.mc_profile) C.float {
	if p == nil {
		return 0
	}
	return C.float(profileFromC(p).FPS())
}

//export mc_profile_sar
func mc_profile_sar(p *C.mc_profile) C.float {
	if p == nil {
		return 0
	}
	return C.float(profileFromC(p).SAR())
}

//export mc_profile_dar
func mc_profile_dar(p *C.mc_profile) C.float {
	if p == nil {
		return 0
	}
	return C.float(profileFromC(p).DAR())
}

//export mc_preset_count
func mc_preset_count() C.size_t {
	return C.size_t(preset.Default().Len())
}

// mc_preset_get copies the named built-in profile, e.g. "HD - 1080p30",
// into out.
//
//export mc_preset_get
func mc_preset_get(name *C.char, out *C.mc_profile) C.bool {
	if out == nil {
		discard("mc_preset_get", ErrNullPointer)
		return false
	}
	n, err := goKey(name)
	if err != nil {
		discard("mc_preset_get", err)
		return false
	}
	p, ok := preset.Default().Get(n)
	if !ok {
		return false
	}
	*out = profileToC(p)
	return true
}
