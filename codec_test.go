package kvlog

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert"
)

func TestJSONCodecRoundTrip(t *testing.T) {
	{
		codec := JSONCodec[string]{}
		s, err := codec.Encode("hello, world\nbye")
		assert.NoError(t, err)
		// strings encode on one line, control characters escaped
		assert.False(t, strings.ContainsAny(s, "\n\r"))
		got, err := codec.Decode(s)
		assert.NoError(t, err)
		assert.Equal(t, "hello, world\nbye", got)
	}
	{
		codec := JSONCodec[int]{}
		s, err := codec.Encode(-42)
		assert.NoError(t, err)
		assert.Equal(t, "-42", s)
		got, err := codec.Decode(s)
		assert.NoError(t, err)
		assert.Equal(t, -42, got)
	}
	{
		type point struct {
			X int `json:"x"`
			Y int `json:"y"`
		}
		codec := JSONCodec[point]{}
		s, err := codec.Encode(point{X: 1, Y: 2})
		assert.NoError(t, err)
		assert.Equal(t, `{"x":1,"y":2}`, s)
		got, err := codec.Decode(s)
		assert.NoError(t, err)
		assert.Equal(t, point{X: 1, Y: 2}, got)
	}
}

func TestJSONCodecRefusesTombstoneCollision(t *testing.T) {
	// a nil pointer marshals to the literal `null`, which would read
	// back as a deletion
	codec := JSONCodec[*int]{}
	_, err := codec.Encode(nil)
	assert.Error(t, err)
}

func TestJSONCodecDecodeError(t *testing.T) {
	codec := JSONCodec[int]{}
	_, err := codec.Decode("not json")
	assert.Error(t, err)
}

func TestCheckTombstone(t *testing.T) {
	assert.NoError(t, checkTombstone("null"))
	assert.NoError(t, checkTombstone("<absent>"))
	assert.Error(t, checkTombstone(""))
	assert.Error(t, checkTombstone("nu\nll"))
	assert.Error(t, checkTombstone("null\r"))
}
