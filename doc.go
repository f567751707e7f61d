// Package mediacore is the data-model and configuration layer of a media
// pipeline. It describes what a video frame is: its format profile, its
// placement, and an open-ended bag of typed metadata.
//
// The root package holds the video Frame and its builder. The building
// blocks live in subpackages:
//
//   - geometry: positions, rectangles and frame dimensions
//   - color: the closed set of color space tags
//   - property: typed values and the Store that keys them by name
//   - profile: frame rate and aspect ratios of a video format
//   - preset: named profiles compiled from definition documents
//   - sample: raw audio/video sample buffers
//   - limits: size limits enforced at the C boundary
//
// # Getting Started
//
// Build a frame from a built-in preset and attach metadata:
//
//	hd, ok := preset.Default().Get("HD - 1080p30")
//	if !ok {
//	    log.Fatal("missing preset")
//	}
//
//	props := property.NewStore().
//	    Set("source", property.String("camera-1")).
//	    Set("roi", property.Rect(geometry.Rect{Right: 640, Bottom: 360}))
//
//	frame := mediacore.NewFrameBuilder().
//	    SetProfile(hd).
//	    SetViewport(geometry.Frame{Width: 1280, Height: 720}).
//	    SetProperties(props).
//	    Build()
//
//	fmt.Println(frame.Profile.FPS()) // 30
//
// # Presets
//
// Preset documents live under presets/, one file per format, grouped by
// category directory. The generated catalog behind preset.Default is
// refreshed with:
//
//	go generate ./preset
//
// Programs that ship their own definitions can compile them at startup
// with preset.Load instead.
//
// # Thread Safety
//
// Frames, profiles and property stores are plain values with no internal
// locking; callers that share one across goroutines synchronize access.
// The preset catalog is immutable and safe for concurrent readers.
//
// # C API
//
// The capi directory builds a C shared library over the same types. See
// its package documentation for the handle and memory conventions.
package mediacore
