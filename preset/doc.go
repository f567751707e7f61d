// Package preset compiles declarative video-format definitions into a
// catalog of named profiles.
//
// # Definition documents
//
// Each file below the preset root is one document. JSON is the default
// encoding; files ending in .yaml or .yml are read as YAML. Every document
// must carry:
//
//	{
//	    "description": "1080p30",
//	    "frame": {"width": 1920, "height": 1080},
//	    "frame_rate": {"number": 30, "denominator": 1},
//	    "sample_aspect": {"number": 1, "denominator": 1},
//	    "display_aspect": {"number": 16, "denominator": 9},
//	    "explicit_type": "Computed",
//	    "render_type": "Progressive",
//	    "color_space": "Bt709"
//	}
//
// The name of the directory holding a document is its category. The catalog
// key is "<category> - <description>"; when two documents produce the same
// key, the one processed later wins.
//
// # Build time
//
// cmd/gen-presets runs Compile over the presets/ tree and writes
// zz_generated_presets.go with Generate. Any malformed document aborts the
// run and nothing is written. Default returns the catalog compiled into the
// binary:
//
//	p, ok := preset.Default().Get("HD - 1080p30")
//
// Load performs the same compilation at runtime from any fs.FS.
package preset

//go:generate go run ../cmd/gen-presets -in ../presets -o zz_generated_presets.go -pkg preset
