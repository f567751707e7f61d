package main

/*
#include <stdlib.h>
#include "mediacore.h"
*/
import "C"

import "unsafe"

// C-side argument constructors. _test files cannot use cgo, so the
// package tests build their C strings and values through these.

func cString(s string) *C.char {
	return C.CString(s)
}

func freeCString(p *C.char) {
	C.free(unsafe.Pointer(p))
}

func goStringOf(p *C.char) string {
	return C.GoString(p)
}

func intValue(i int32) *C.mc_value {
	return &C.mc_value{kind: C.MC_VALUE_INT, i32: C.int32_t(i)}
}

func stringValue(p *C.char) *C.mc_value {
	return &C.mc_value{kind: C.MC_VALUE_STRING, str: p}
}

func newCValue() *C.mc_value {
	return new(C.mc_value)
}

func newCProfile() *C.mc_profile {
	return new(C.mc_profile)
}
