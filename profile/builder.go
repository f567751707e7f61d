package profile

import (
	"github.com/opd-ai/mediacore/color"
	"github.com/opd-ai/mediacore/geometry"
)

// Builder accumulates Profile fields. Each setter overwrites exactly one
// field. Build copies the staged profile, so a Builder can be reused.
type Builder struct {
	p Profile
}

// NewBuilder returns a builder with every field at its default.
func NewBuilder() *Builder {
	return &Builder{}
}

// From returns a builder staged with a copy of p.
func From(p Profile) *Builder {
	return &Builder{p: p}
}

func (b *Builder) SetFrame(frame geometry.Frame) *Builder {
	b.p.Frame = frame
	return b
}

func (b *Builder) SetFrameRate(frameRate Rational) *Builder {
	b.p.FrameRate = frameRate
	return b
}

func (b *Builder) SetSampleAspect(sampleAspect Rational) *Builder {
	b.p.SampleAspect = sampleAspect
	return b
}

func (b *Builder) SetDisplayAspect(displayAspect Rational) *Builder {
	b.p.DisplayAspect = displayAspect
	return b
}

func (b *Builder) SetColorSpace(colorSpace color.ColorSpace) *Builder {
	b.p.ColorSpace = colorSpace
	return b
}

func (b *Builder) SetExplicitType(explicitType ExplicitType) *Builder {
	b.p.ExplicitType = explicitType
	return b
}

func (b *Builder) SetRenderType(renderType RenderType) *Builder {
	b.p.RenderType = renderType
	return b
}

// Build returns a copy of the staged profile.
func (b *Builder) Build() Profile {
	return b.p
}
