package kvlog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Codec converts values of type T to and from the text stored in a
// record. Implementations must satisfy:
//   - Encode output is a single line: no '\n' or '\r'
//   - Encode never emits the Tombstone literal for a live value
//   - Decode(Encode(v)) round-trips any v of type T
//
// Tombstone is the fixed literal written by Unset; it marks the key as
// deleted when the log is folded. It is codec-level, not value-level,
// which is what lets Unset work even when T has no useful encoding.
type Codec[T any] interface {
	Encode(v T) (string, error)
	Decode(s string) (T, error)
	Tombstone() string
}

const jsonTombstone = "null"

// JSONCodec encodes values as compact JSON. The tombstone is the JSON
// literal "null"; any live value is textually distinguishable from it
// (numbers, quoted strings, arrays, objects). Compact JSON never
// contains a raw newline, so the single-line requirement holds.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) (string, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	s := string(d)
	// a value whose encoding is the tombstone (e.g. a nil pointer)
	// would read back as a deletion; refuse to write it
	if s == jsonTombstone {
		return "", fmt.Errorf("value encodes as reserved tombstone %q", jsonTombstone)
	}
	return s, nil
}

func (JSONCodec[T]) Decode(s string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

func (JSONCodec[T]) Tombstone() string {
	return jsonTombstone
}

// checkTombstone verifies the codec's reserved literal at Open time so
// a broken codec fails fast instead of corrupting the log.
func checkTombstone(tombstone string) error {
	if tombstone == "" {
		return fmt.Errorf("codec tombstone is empty")
	}
	if strings.ContainsAny(tombstone, "\n\r") {
		return fmt.Errorf("codec tombstone contains a newline: %q", tombstone)
	}
	return nil
}
