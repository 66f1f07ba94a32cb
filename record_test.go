package kvlog

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert"
)

func TestEncodeRecord(t *testing.T) {
	got := encodeRecord(nil, "k", `"v"`)
	assert.Equal(t, "k,\"v\"\n", string(got))

	// buffer is re-usable across calls
	got = encodeRecord(got[:0], "foo", "42")
	assert.Equal(t, "foo,42\n", string(got))

	got = encodeRecord(nil, "", "null")
	assert.Equal(t, ",null\n", string(got))
}

func TestSplitRecord(t *testing.T) {
	tests := [][]string{
		{"a,b", "a", "b"},
		{"a,b,c", "a", "b,c"}, // split on the first comma only
		{"a,", "a", ""},
		{",v", "", "v"},
		{`k,"a,b"`, "k", `"a,b"`},
	}
	for _, test := range tests {
		key, value, err := splitRecord(test[0], 0)
		assert.NoError(t, err, "line %q", test[0])
		assert.Equal(t, test[1], key, "line %q", test[0])
		assert.Equal(t, test[2], value, "line %q", test[0])
	}
}

func TestSplitRecordNoComma(t *testing.T) {
	_, _, err := splitRecord("garbage", 7)
	assert.Error(t, err)
	var rerr *ReadError
	assert.True(t, errors.As(err, &rerr))
	assert.True(t, strings.Contains(err.Error(), "line 7"), "got: %s", err)
	assert.True(t, strings.Contains(err.Error(), "garbage"), "got: %s", err)
}
