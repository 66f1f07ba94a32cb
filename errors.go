package kvlog

import "fmt"

// InvalidKeyError is returned by any operation given a key with
// characters outside the allowed set (see ValidateKey).
type InvalidKeyError struct {
	// Key is the offending key text
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("key `%s` contains invalid characters", e.Key)
}

// WriteError is returned when appending a record fails, either because
// the value could not be encoded or because of an I/O failure.
type WriteError struct {
	Cause string
}

func (e *WriteError) Error() string {
	return "unable to write record: " + e.Cause
}

// ReadError is returned when scanning the log fails: an I/O failure, a
// malformed record line or a value that the codec could not decode.
// Parse errors name the zero-based line number and quote the line.
type ReadError struct {
	Cause string
}

func (e *ReadError) Error() string {
	return "unable to read record: " + e.Cause
}

func writeErr(err error) error {
	return &WriteError{Cause: err.Error()}
}

func readErr(err error) error {
	return &ReadError{Cause: err.Error()}
}

func lineErr(lineNo int, line string) error {
	return &ReadError{Cause: fmt.Sprintf("invalid data at line %d: `%s`", lineNo, line)}
}
