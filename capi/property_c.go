package main

/*
#include <stdlib.h>
#include "mediacore.h"
*/
import "C"

import (
	"unsafe"

	"github.com/opd-ai/mediacore/property"
)

var stores = newTable[*property.Store]()

func storeInsert(h handle, key string, v property.Value) error {
	s, ok := stores.get(h)
	if !ok {
		return ErrUnknownHandle
	}
	s.Set(key, property.Clone(v))
	return nil
}

func storeGet(h handle, key string) (property.Value, bool) {
	s, ok := stores.get(h)
	if !ok {
		return nil, false
	}
	return s.Get(key)
}

//export mc_property_store_new
func mc_property_store_new() C.mc_handle {
	return C.mc_handle(stores.add(property.NewStore()))
}

//export mc_property_store_free
func mc_property_store_free(h C.mc_handle) {
	stores.remove(handle(h))
}

//export mc_property_store_insert
func mc_property_store_insert(h C.mc_handle, key *C.char, value *C.mc_value) {
	k, err := goKey(key)
	if err != nil {
		discard("mc_property_store_insert", err)
		return
	}
	v, err := valueFromC(value)
	if err != nil {
		discard("mc_property_store_insert", err)
		return
	}
	if err := storeInsert(handle(h), k, v); err != nil {
		discard("mc_property_store_insert", err)
	}
}

//export mc_property_store_remove
func mc_property_store_remove(h C.mc_handle, key *C.char) {
	k, err := goKey(key)
	if err != nil {
		discard("mc_property_store_remove", err)
		return
	}
	if s, ok := stores.get(handle(h)); ok {
		s.Remove(k)
	}
}

//export mc_property_store_clear
func mc_property_store_clear(h C.mc_handle) {
	if s, ok := stores.get(handle(h)); ok {
		s.Clear()
	}
}

//export mc_property_store_len
func mc_property_store_len(h C.mc_handle) C.size_t {
	s, ok := stores.get(handle(h))
	if !ok {
		return 0
	}
	return C.size_t(s.Len())
}

// mc_property_store_get copies the value under key into out and reports
// whether it was present. out is left untouched on a miss.
//
//export mc_property_store_get
func mc_property_store_get(h C.mc_handle, key *C.char, out *C.mc_value) C.bool {
	if out == nil {
		discard("mc_property_store_get", ErrNullPointer)
		return false
	}
	k, err := goKey(key)
	if err != nil {
		discard("mc_property_store_get", err)
		return false
	}
	v, ok := storeGet(handle(h), k)
	if !ok {
		return false
	}
	valueToC(v, out)
	return true
}

// mc_value_release frees the string or buffer a getter allocated into v
// and resets it to MC_VALUE_NONE.
//
//export mc_value_release
func mc_value_release(v *C.mc_value) {
	if v == nil {
		return
	}
	if v.str != nil {
		C.free(unsafe.Pointer(v.str))
	}
	if v.data != nil {
		C.free(unsafe.Pointer(v.data))
	}
	*v = C.mc_value{}
}
