package preset

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
)

// ErrNoPackage is returned by Generate when no package name is given.
var ErrNoPackage = errors.New("generated package name is empty")

// GenerateOptions controls the emitted Go file.
type GenerateOptions struct {
	// Package is the package clause of the generated file.
	Package string
	// Command is named in the DO NOT EDIT header.
	Command string
}

// Generate writes a Go source file defining generatedProfiles, which
// returns the compiled catalog, and SourceDigest. Entries are assigned in
// traversal order so repeated names resolve exactly as NewCatalog does.
//
// Nothing is written to w if formatting fails.
func Generate(w io.Writer, c *Compilation, opts GenerateOptions) error {
	if opts.Package == "" {
		return ErrNoPackage
	}
	if opts.Command == "" {
		opts.Command = "gen-presets"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", opts.Command)
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)

	if len(c.Entries) > 0 {
		fmt.Fprintf(&buf, "import (\n")
		fmt.Fprintf(&buf, "\t%q\n", "github.com/opd-ai/mediacore/color")
		fmt.Fprintf(&buf, "\t%q\n", "github.com/opd-ai/mediacore/geometry")
		fmt.Fprintf(&buf, "\t%q\n", "github.com/opd-ai/mediacore/profile")
		fmt.Fprintf(&buf, ")\n\n")
	} else {
		fmt.Fprintf(&buf, "import %q\n\n", "github.com/opd-ai/mediacore/profile")
	}

	fmt.Fprintf(&buf, "// SourceDigest is the BLAKE2b-256 digest of the documents this file was generated from.\n")
	fmt.Fprintf(&buf, "const SourceDigest = %q\n\n", c.DigestHex())

	fmt.Fprintf(&buf, "func generatedProfiles() map[string]profile.Profile {\n")
	fmt.Fprintf(&buf, "\tm := make(map[string]profile.Profile, %d)\n\n", len(c.Entries))

	for _, e := range c.Entries {
		d := e.Definition
		fmt.Fprintf(&buf, "\t// %s\n", d.Path)
		fmt.Fprintf(&buf, "\tm[%q] = profile.NewBuilder().\n", e.Name)
		fmt.Fprintf(&buf, "\t\tSetFrame(geometry.Frame{Width: %d, Height: %d}).\n", d.Width, d.Height)
		fmt.Fprintf(&buf, "\t\tSetFrameRate(profile.Rational{Number: %d, Denominator: %d}).\n", d.FrameRate.Number, d.FrameRate.Denominator)
		fmt.Fprintf(&buf, "\t\tSetSampleAspect(profile.Rational{Number: %d, Denominator: %d}).\n", d.SampleAspect.Number, d.SampleAspect.Denominator)
		fmt.Fprintf(&buf, "\t\tSetDisplayAspect(profile.Rational{Number: %d, Denominator: %d}).\n", d.DisplayAspect.Number, d.DisplayAspect.Denominator)
		fmt.Fprintf(&buf, "\t\tSetColorSpace(color.%s).\n", d.ColorSpace)
		fmt.Fprintf(&buf, "\t\tSetExplicitType(profile.%s).\n", d.ExplicitType)
		fmt.Fprintf(&buf, "\t\tSetRenderType(profile.%s).\n", d.RenderType)
		fmt.Fprintf(&buf, "\t\tBuild()\n\n")
	}

	fmt.Fprintf(&buf, "\treturn m\n")
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated presets: %w", err)
	}
	_, err = w.Write(src)
	return err
}
