// Package main provides C API bindings for mediacore, exposing property
// stores, geometry, video frames, profiles, the built-in presets and sample
// buffers to C hosts and other language bindings.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libmediacore.so ./capi/
//
// This generates:
//   - libmediacore.so: The shared library
//   - libmediacore.h: Auto-generated C header with function declarations
//
// The value types (mc_value, mc_profile, mc_opt_*) are declared in
// mediacore.h, which libmediacore.h includes.
//
// # C API Usage
//
//	#include "libmediacore.h"
//
//	mc_handle props = mc_property_store_new();
//
//	mc_value v = {0};
//	v.kind = MC_VALUE_STRING;
//	v.str = "camera-1";
//	mc_property_store_insert(props, "source", &v);
//
//	mc_value out;
//	if (mc_property_store_get(props, "source", &out)) {
//	    printf("%s\n", out.str);
//	    mc_value_release(&out);
//	}
//	mc_property_store_free(props);
//
//	mc_profile hd;
//	if (mc_preset_get("HD - 1080p30", &hd)) {
//	    printf("%.2f fps\n", mc_profile_fps(&hd));
//	}
//
// # Handles
//
// Objects created by the library are referenced by mc_handle values. Each
// object kind has its own table; 0 is never issued and acts as the null
// handle. Every *_free function accepts 0 and already freed handles
// without effect. Handles are safe to pass between threads, but the
// objects behind them are not synchronized: callers serialize mutation of
// one object themselves.
//
// # Input Handling
//
// Invalid input never crashes the host and never produces a partial
// update. A call with a NULL pointer, an unknown handle, a string that is
// not valid UTF-8, or a size beyond the limits package is discarded and
// logged at debug level. Getters report absence through a bool return or
// the present field of an mc_opt_* result.
//
// # Memory
//
//   - Values passed in are copied; the caller keeps ownership.
//   - Strings and buffers returned in an mc_value are allocated with
//     malloc and must be released with mc_value_release. Never call
//     mc_value_release on a value the caller filled in itself.
//   - Sample buffer storage is allocated with calloc. The pointer from
//     mc_sample_buffer_data stays valid until mc_sample_buffer_free.
//
// # Files
//
//   - mediacore.h: C type declarations shared by all files
//   - handles.go: Handle tables
//   - convert.go: C and Go value conversion
//   - property_c.go: Property store functions
//   - geometry_c.go: Position, rect and frame functions
//   - video_frame_c.go: Video frame functions
//   - profile_c.go: Profile helpers and built-in presets
//   - sample_c.go: Sample buffer functions
//   - cargs.go: C argument constructors used by the tests
package main
