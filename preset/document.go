package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/mediacore/color"
	"github.com/opd-ai/mediacore/geometry"
	"github.com/opd-ai/mediacore/profile"
)

// ErrInvalidDocument wraps every failure to read a definition document.
var ErrInvalidDocument = errors.New("invalid preset document")

// IntRatio is a ratio as written in a definition document.
type IntRatio = profile.Ratio[int64, int64]

// Definition is the validated content of one document.
type Definition struct {
	Path          string
	Category      string
	Description   string
	Width         int64
	Height        int64
	FrameRate     IntRatio
	SampleAspect  IntRatio
	DisplayAspect IntRatio
	ExplicitType  profile.ExplicitType
	RenderType    profile.RenderType
	ColorSpace    color.ColorSpace
}

// Name returns the catalog key for d.
func (d Definition) Name() string {
	return Name(d.Category, d.Description)
}

// Profile builds the profile described by d.
func (d Definition) Profile() profile.Profile {
	return profile.NewBuilder().
		SetFrame(geometry.Frame{Width: float32(d.Width), Height: float32(d.Height)}).
		SetFrameRate(toRational(d.FrameRate)).
		SetSampleAspect(toRational(d.SampleAspect)).
		SetDisplayAspect(toRational(d.DisplayAspect)).
		SetColorSpace(d.ColorSpace).
		SetExplicitType(d.ExplicitType).
		SetRenderType(d.RenderType).
		Build()
}

func toRational(r IntRatio) profile.Rational {
	return profile.Rational{Number: float32(r.Number), Denominator: float32(r.Denominator)}
}

// Name joins a category and description into a catalog key.
func Name(category, description string) string {
	return category + " - " + description
}

// decodeDocument turns raw bytes into a generic key/value document.
func decodeDocument(name string, data []byte) (map[string]any, error) {
	var doc map[string]any
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("trailing data after document")
		}
	}
	if doc == nil {
		return nil, errors.New("document is not an object")
	}
	return doc, nil
}

// parseDefinition decodes and validates one document.
func parseDefinition(filePath, category string, data []byte) (Definition, error) {
	fail := func(err error) (Definition, error) {
		return Definition{}, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, filePath, err)
	}

	doc, err := decodeDocument(filePath, data)
	if err != nil {
		return fail(err)
	}

	def := Definition{Path: filePath, Category: category}

	if def.Description, err = stringField(doc, "description"); err != nil {
		return fail(err)
	}

	frame, err := objectField(doc, "frame")
	if err != nil {
		return fail(err)
	}
	if def.Width, err = intField(frame, "frame", "width"); err != nil {
		return fail(err)
	}
	if def.Height, err = intField(frame, "frame", "height"); err != nil {
		return fail(err)
	}

	if def.FrameRate, err = ratioField(doc, "frame_rate"); err != nil {
		return fail(err)
	}
	if def.SampleAspect, err = ratioField(doc, "sample_aspect"); err != nil {
		return fail(err)
	}
	if def.DisplayAspect, err = ratioField(doc, "display_aspect"); err != nil {
		return fail(err)
	}

	tag, err := stringField(doc, "explicit_type")
	if err != nil {
		return fail(err)
	}
	if def.ExplicitType, err = profile.ParseExplicitType(tag); err != nil {
		return fail(err)
	}

	if tag, err = stringField(doc, "render_type"); err != nil {
		return fail(err)
	}
	if def.RenderType, err = profile.ParseRenderType(tag); err != nil {
		return fail(err)
	}

	if tag, err = stringField(doc, "color_space"); err != nil {
		return fail(err)
	}
	if def.ColorSpace, err = color.ParseColorSpace(tag); err != nil {
		return fail(err)
	}

	return def, nil
}

func stringField(doc map[string]any, key string) (string, error) {
	raw, ok := doc[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, raw)
	}
	return s, nil
}

func objectField(doc map[string]any, key string) (map[string]any, error) {
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("missing field %q", key)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q: expected object, got %T", key, raw)
	}
	return obj, nil
}

func intField(obj map[string]any, parent, key string) (int64, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", parent+"."+key)
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, fmt.Errorf("field %q: expected integer, got %v", parent+"."+key, raw)
	}
	return n, nil
}

func ratioField(doc map[string]any, key string) (IntRatio, error) {
	obj, err := objectField(doc, key)
	if err != nil {
		return IntRatio{}, err
	}
	num, err := intField(obj, key, "number")
	if err != nil {
		return IntRatio{}, err
	}
	den, err := intField(obj, key, "denominator")
	if err != nil {
		return IntRatio{}, err
	}
	return IntRatio{Number: num, Denominator: den}, nil
}

// asInt accepts the integer representations produced by the JSON and YAML
// decoders. Fractional numbers are rejected.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
