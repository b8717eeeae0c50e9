package envelope

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	t.Run(`round trip check`, func(t *testing.T) {
		fields := FieldMap{
			"username":  String("alice"),
			"email":     String("a@x.com"),
			"stock":     Int(42),
			"price":     Float(19.99),
			"is_active": Bool(true),
			"comment":   Null(),
		}
		payload, err := Encode(fields)
		require.Nil(t, err)

		decoded, err := Decode(payload)
		require.Nil(t, err)
		require.Equal(t, fields, decoded)
	})

	t.Run(`integral float keeps its kind`, func(t *testing.T) {
		fields := FieldMap{"price": Float(20)}
		payload, err := Encode(fields)
		require.Nil(t, err)

		decoded, err := Decode(payload)
		require.Nil(t, err)
		require.Equal(t, KindFloat, decoded["price"].Kind)
		require.Equal(t, float64(20), decoded["price"].Float)
	})

	t.Run(`empty map round trip`, func(t *testing.T) {
		payload, err := Encode(FieldMap{})
		require.Nil(t, err)
		require.Equal(t, "{}", payload)

		decoded, err := Decode(payload)
		require.Nil(t, err)
		require.Equal(t, FieldMap{}, decoded)
	})

	t.Run(`encode is deterministic`, func(t *testing.T) {
		fields := FieldMap{
			"b": Int(2),
			"a": Int(1),
			"c": Int(3),
		}
		payload, err := Encode(fields)
		require.Nil(t, err)
		require.Equal(t, `{"a":1,"b":2,"c":3}`, payload)
	})

	t.Run(`decode rejects invalid json`, func(t *testing.T) {
		_, err := Decode(`{"a":`)
		require.True(t, errors.Is(err, ErrMalformedPayload))
	})

	t.Run(`decode rejects non object`, func(t *testing.T) {
		_, err := Decode(`[1,2,3]`)
		require.True(t, errors.Is(err, ErrMalformedPayload))

		_, err = Decode(`"just a string"`)
		require.True(t, errors.Is(err, ErrMalformedPayload))

		_, err = Decode(`null`)
		require.True(t, errors.Is(err, ErrMalformedPayload))

		_, err = Decode(`42`)
		require.True(t, errors.Is(err, ErrMalformedPayload))
	})

	t.Run(`encode rejects non-finite floats`, func(t *testing.T) {
		_, err := Encode(FieldMap{"price": Float(math.NaN())})
		require.NotNil(t, err)

		_, err = Encode(FieldMap{"price": Float(math.Inf(1))})
		require.NotNil(t, err)

		_, err = Encode(FieldMap{"price": Float(math.Inf(-1))})
		require.NotNil(t, err)
	})

	t.Run(`decode rejects nested structures`, func(t *testing.T) {
		_, err := Decode(`{"a":{"nested":1}}`)
		require.True(t, errors.Is(err, ErrMalformedPayload))

		_, err = Decode(`{"a":[1,2]}`)
		require.True(t, errors.Is(err, ErrMalformedPayload))
	})

	t.Run(`accessors with defaults`, func(t *testing.T) {
		fields := FieldMap{
			"name":   String("test"),
			"stock":  Int(5),
			"price":  Float(1.5),
			"active": Bool(true),
			"note":   Null(),
		}
		require.Equal(t, "test", fields.StringOr("name", ""))
		require.Equal(t, "def", fields.StringOr("missing", "def"))
		require.Equal(t, int64(5), fields.IntOr("stock", 0))
		require.Equal(t, 1.5, fields.FloatOr("price", 0))
		require.Equal(t, float64(5), fields.FloatOr("stock", 0))
		require.Equal(t, true, fields.BoolOr("active", false))
		require.Equal(t, true, fields.Has("note"))
		require.Equal(t, false, fields.Has("missing"))
	})
}
