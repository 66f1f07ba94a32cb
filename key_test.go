package kvlog

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert"
)

func TestValidateKey(t *testing.T) {
	good := []string{
		"",
		"key",
		"key with spaces",
		"0123456789",
		"ABCXYZabcxyz",
		"a:b/c.d",
		"path/to/value.txt",
	}
	for _, key := range good {
		assert.NoError(t, ValidateKey(key), "key %q", key)
	}

	bad := []string{
		"this,is,a,bad,key",
		"this is\nalso bad",
		"tab\tkey",
		"key=1",
		"key-1",
		"key\r",
		"café",
		"k\x00",
	}
	for _, key := range bad {
		err := ValidateKey(key)
		assert.Error(t, err, "key %q", key)
		var invalid *InvalidKeyError
		assert.True(t, errors.As(err, &invalid), "key %q", key)
		assert.Equal(t, key, invalid.Key)
	}
}
