package property

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opd-ai/mediacore/color"
	"github.com/opd-ai/mediacore/geometry"
)

// ErrUnknownKind is returned when decoding a value whose kind tag is not recognized.
var ErrUnknownKind = errors.New("unknown property kind")

// encodedValue is the wire form of a Value: {"kind": "...", "value": ...}.
type encodedValue struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalValue encodes v in its tagged JSON form.
func MarshalValue(v Value) ([]byte, error) {
	v = normalize(v)
	enc := encodedValue{Kind: v.Kind().String()}
	if v.Kind() != KindNone {
		var payload any
		switch val := v.(type) {
		case Int:
			payload = int32(val)
		case Int64:
			payload = int64(val)
		case Double:
			payload = float32(val)
		case String:
			payload = string(val)
		case Position:
			payload = geometry.Position(val)
		case Rect:
			payload = geometry.Rect(val)
		case Buffer:
			payload = []byte(val)
		case Color:
			payload = color.ColorSpace(val)
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s value: %w", v.Kind(), err)
		}
		enc.Value = raw
	}
	return json.Marshal(enc)
}

// UnmarshalValue decodes a value produced by MarshalValue.
func UnmarshalValue(data []byte) (Value, error) {
	var enc encodedValue
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, err
	}
	kind, ok := parseKind(enc.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, enc.Kind)
	}

	switch kind {
	case KindNone:
		return None{}, nil
	case KindInt:
		var v int32
		return decodePayload(enc, &v, func() Value { return Int(v) })
	case KindInt64:
		var v int64
		return decodePayload(enc, &v, func() Value { return Int64(v) })
	case KindDouble:
		var v float32
		return decodePayload(enc, &v, func() Value { return Double(v) })
	case KindString:
		var v string
		return decodePayload(enc, &v, func() Value { return String(v) })
	case KindPosition:
		var v geometry.Position
		return decodePayload(enc, &v, func() Value { return Position(v) })
	case KindRect:
		var v geometry.Rect
		return decodePayload(enc, &v, func() Value { return Rect(v) })
	case KindBuffer:
		var v []byte
		return decodePayload(enc, &v, func() Value { return Buffer(v) })
	case KindColor:
		var v color.ColorSpace
		return decodePayload(enc, &v, func() Value { return Color(v) })
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, enc.Kind)
}

func decodePayload(enc encodedValue, dst any, wrap func() Value) (Value, error) {
	if len(enc.Value) == 0 {
		return nil, fmt.Errorf("decode %s value: missing payload", enc.Kind)
	}
	if err := json.Unmarshal(enc.Value, dst); err != nil {
		return nil, fmt.Errorf("decode %s value: %w", enc.Kind, err)
	}
	return wrap(), nil
}

// MarshalJSON encodes the store as an object of tagged values.
func (s *Store) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.inner))
	for k, v := range s.inner {
		raw, err := MarshalValue(v)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		out[k] = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the store contents with the decoded object.
func (s *Store) UnmarshalJSON(data []byte) error {
	var in map[string]json.RawMessage
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	decoded := make(map[string]Value, len(in))
	for k, raw := range in {
		v, err := UnmarshalValue(raw)
		if err != nil {
			return fmt.Errorf("property %q: %w", k, err)
		}
		decoded[k] = v
	}
	s.inner = decoded
	return nil
}
