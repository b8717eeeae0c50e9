package envelope

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedPayload is returned by Decode when the payload is not a flat
// JSON object of supported value kinds.
var ErrMalformedPayload = errors.New("malformed change payload")

type ValueKind string

const (
	KindString ValueKind = "string"
	KindInt    ValueKind = "int"
	KindFloat  ValueKind = "float"
	KindBool   ValueKind = "bool"
	KindNull   ValueKind = "null"
)

// Value is a single proposed field value, a closed union over the kinds a
// change payload may carry. Exactly one of the typed members is meaningful,
// selected by Kind.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

func String(v string) Value { return Value{Kind: KindString, Str: v} }
func Int(v int64) Value     { return Value{Kind: KindInt, Int: v} }
func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func Bool(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func Null() Value           { return Value{Kind: KindNull} }

// FieldMap maps entity field names to proposed values.
type FieldMap map[string]Value

// Encode serializes the field map into the payload text stored on a pending
// request. Encoding only fails for values JSON cannot represent, such as
// non-finite floats.
func Encode(fields FieldMap) (string, error) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for idx, key := range keys {
		if idx > 0 {
			buf.WriteByte(',')
		}
		keyData, err := json.Marshal(key)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode field name")
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		valueData, err := encodeValue(fields[key])
		if err != nil {
			return "", err
		}
		buf.WriteString(valueData)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

func encodeValue(value Value) (string, error) {
	switch value.Kind {
	case KindString:
		data, err := json.Marshal(value.Str)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode field value")
		}
		return string(data), nil
	case KindInt:
		return strconv.FormatInt(value.Int, 10), nil
	case KindFloat:
		if math.IsNaN(value.Float) || math.IsInf(value.Float, 0) {
			return "", errors.Errorf("non-finite float value %v is not representable", value.Float)
		}
		formatted := strconv.FormatFloat(value.Float, 'g', -1, 64)
		// keep a decimal point so the kind survives the round trip
		if !strings.ContainsAny(formatted, ".eE") {
			formatted += ".0"
		}
		return formatted, nil
	case KindBool:
		return strconv.FormatBool(value.Bool), nil
	case KindNull:
		return "null", nil
	}
	return "", errors.Errorf("unsupported value kind %q", value.Kind)
}

// Decode parses a payload back into a field map. Fails with
// ErrMalformedPayload on invalid JSON, a non-object top level, or nested
// objects/arrays.
func Decode(payload string) (FieldMap, error) {
	decoder := json.NewDecoder(strings.NewReader(payload))
	decoder.UseNumber()
	var top interface{}
	if err := decoder.Decode(&top); err != nil {
		return nil, errors.Wrap(ErrMalformedPayload, err.Error())
	}
	// reject trailing garbage after the object
	if decoder.More() {
		return nil, errors.Wrap(ErrMalformedPayload, "unexpected data after payload object")
	}
	// "null" and scalar top levels decode without error, catch them here
	raw, ok := top.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrMalformedPayload, "payload is not an object")
	}
	fields := make(FieldMap, len(raw))
	for key, rawValue := range raw {
		value, err := decodeValue(rawValue)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", key)
		}
		fields[key] = value
	}
	return fields, nil
}

func decodeValue(raw interface{}) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case json.Number:
		asString := typed.String()
		if !strings.ContainsAny(asString, ".eE") {
			parsed, err := typed.Int64()
			if err == nil {
				return Int(parsed), nil
			}
		}
		parsed, err := typed.Float64()
		if err != nil {
			return Value{}, errors.Wrap(ErrMalformedPayload, err.Error())
		}
		return Float(parsed), nil
	}
	return Value{}, errors.Wrap(ErrMalformedPayload, "nested objects and arrays are not supported")
}

// StringOr returns the string value of the named field, or def when the
// field is absent or not a string.
func (f FieldMap) StringOr(name, def string) string {
	value, ok := f[name]
	if !ok || value.Kind != KindString {
		return def
	}
	return value.Str
}

// IntOr returns the integer value of the named field, or def.
func (f FieldMap) IntOr(name string, def int64) int64 {
	value, ok := f[name]
	if !ok {
		return def
	}
	switch value.Kind {
	case KindInt:
		return value.Int
	case KindFloat:
		return int64(value.Float)
	}
	return def
}

// FloatOr returns the float value of the named field, or def.
func (f FieldMap) FloatOr(name string, def float64) float64 {
	value, ok := f[name]
	if !ok {
		return def
	}
	switch value.Kind {
	case KindFloat:
		return value.Float
	case KindInt:
		return float64(value.Int)
	}
	return def
}

// BoolOr returns the bool value of the named field, or def.
func (f FieldMap) BoolOr(name string, def bool) bool {
	value, ok := f[name]
	if !ok || value.Kind != KindBool {
		return def
	}
	return value.Bool
}

// Has reports whether the field is present, with any kind including null.
func (f FieldMap) Has(name string) bool {
	_, ok := f[name]
	return ok
}
