package kvlog

// ValidateKey returns nil if key can be stored, *InvalidKeyError
// otherwise. Allowed characters are digits, ASCII letters, space, ':',
// '/' and '.'. The empty key is valid. The comma is excluded because it
// separates key from value in a record; control characters are excluded
// because a newline would terminate the record. Keeping keys inside
// this set is what makes record decoding unambiguous without escaping.
func ValidateKey(key string) error {
	for i := 0; i < len(key); i++ {
		if !validKeyByte(key[i]) {
			return &InvalidKeyError{Key: key}
		}
	}
	return nil
}

func validKeyByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
	case b >= 'A' && b <= 'Z':
	case b >= 'a' && b <= 'z':
	case b == ' ' || b == ':' || b == '/' || b == '.':
	default:
		return false
	}
	return true
}
