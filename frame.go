package mediacore

import (
	"github.com/opd-ai/mediacore/geometry"
	"github.com/opd-ai/mediacore/profile"
	"github.com/opd-ai/mediacore/property"
)

// FrameMetaData is reserved for per-frame metadata. It has no fields and
// no accessor yet.
type FrameMetaData struct{}

// Frame is one frame of video as it travels through the pipeline: the
// profile it was produced under, its placement and a property bag for
// arbitrary metadata.
type Frame struct {
	Profile     profile.Profile
	AspectRatio geometry.Coordinate
	Viewport    geometry.Frame
	Properties  *property.Store
	Meta        FrameMetaData

	position geometry.Position
	speed    int8
}

// NewFrame returns a frame with default fields and an empty property store.
func NewFrame() *Frame {
	return &Frame{Properties: property.NewStore()}
}

// Position returns the frame's position.
func (f *Frame) Position() geometry.Position {
	return f.position
}

// SetPosition replaces the frame's position.
func (f *Frame) SetPosition(p geometry.Position) {
	f.position = p
}

// Speed returns the playback speed multiplier; negative values play backwards.
func (f *Frame) Speed() int8 {
	return f.speed
}

// SetSpeed replaces the playback speed.
func (f *Frame) SetSpeed(speed int8) {
	f.speed = speed
}

// Clone returns a copy whose property store shares no memory with f.
func (f *Frame) Clone() *Frame {
	out := *f
	if f.Properties != nil {
		out.Properties = f.Properties.Clone()
	}
	return &out
}

// FrameBuilder stages a Frame. Build returns a fresh copy each time.
type FrameBuilder struct {
	f Frame
}

// NewFrameBuilder returns a builder with default fields.
func NewFrameBuilder() *FrameBuilder {
	return &FrameBuilder{}
}

// SetProfile copies p into the staged frame.
func (b *FrameBuilder) SetProfile(p profile.Profile) *FrameBuilder {
	b.f.Profile = p
	return b
}

func (b *FrameBuilder) SetAspectRatio(aspectRatio geometry.Coordinate) *FrameBuilder {
	b.f.AspectRatio = aspectRatio
	return b
}

func (b *FrameBuilder) SetViewport(viewport geometry.Frame) *FrameBuilder {
	b.f.Viewport = viewport
	return b
}

// SetProperties stages props. Each built frame receives its own copy.
func (b *FrameBuilder) SetProperties(props *property.Store) *FrameBuilder {
	b.f.Properties = props
	return b
}

func (b *FrameBuilder) SetMeta(meta FrameMetaData) *FrameBuilder {
	b.f.Meta = meta
	return b
}

func (b *FrameBuilder) SetPosition(position geometry.Position) *FrameBuilder {
	b.f.position = position
	return b
}

func (b *FrameBuilder) SetSpeed(speed int8) *FrameBuilder {
	b.f.speed = speed
	return b
}

// Build returns the staged frame. Each call yields an independent frame;
// when no store was set, the frame gets a new empty one.
func (b *FrameBuilder) Build() *Frame {
	out := b.f.Clone()
	if out.Properties == nil {
		out.Properties = property.NewStore()
	}
	return out
}
