package kvlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// handle is the state shared by all clones of a Store: one open file,
// one cursor, one mutex.
type handle struct {
	file *os.File
	mu   sync.Mutex
	buf  []byte // write buffer, re-used between appends
}

// Store is a key/value store over an append-only log file,
// parameterized by the value type T and an injected Codec.
//
// A *Store is a cheap shareable handle: every copy of the pointer (and
// every Clone) denotes the same file and mutex. Writes through one
// handle are visible to reads through any other.
type Store[T any] struct {
	h     *handle
	codec Codec[T]
}

// Options controls Open behavior beyond the defaults.
type Options struct {
	// RepairPartialLine truncates a trailing line that lacks a
	// terminating newline (the residue of a crash mid-append) back to
	// the last complete record when the store is opened. Complete
	// lines are never touched, even if malformed. When false, such a
	// trailing line makes every scan fail until the file is repaired
	// externally.
	RepairPartialLine bool
}

// Open opens the log file at path, creating it if missing. The file is
// opened for reading and appending and is never truncated.
func Open[T any](path string, codec Codec[T]) (*Store[T], error) {
	return OpenWithOptions(path, codec, Options{})
}

// OpenWithOptions is Open with explicit Options.
func OpenWithOptions[T any](path string, codec Codec[T], opts Options) (*Store[T], error) {
	if err := checkTombstone(codec.Tombstone()); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	if opts.RepairPartialLine {
		if err := repairPartialLine(file); err != nil {
			file.Close()
			return nil, err
		}
	}
	return &Store[T]{
		h:     &handle{file: file},
		codec: codec,
	}, nil
}

// Clone returns a handle to the same store. Clones share the file and
// the mutex; this is the same as copying the pointer, made explicit.
func (s *Store[T]) Clone() *Store[T] {
	return &Store[T]{h: s.h, codec: s.codec}
}

// Close releases the underlying file. It affects every clone of the
// handle; subsequent operations through any clone fail. The log file
// stays on disk.
func (s *Store[T]) Close() error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return s.h.file.Close()
}

// Set appends a record assigning value to key.
func (s *Store[T]) Set(key string, value T) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	encoded, err := s.codec.Encode(value)
	if err != nil {
		return writeErr(err)
	}
	// guard the format against a misbehaving codec
	if strings.ContainsAny(encoded, "\n\r") {
		return writeErr(fmt.Errorf("encoded value contains a newline: %q", encoded))
	}
	return s.appendRecord(key, encoded)
}

// Unset appends a tombstone record for key, removing it from the
// folded view of the log. Earlier records are not rewritten. Unset
// never invokes Encode, so it works for any value type.
func (s *Store[T]) Unset(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return s.appendRecord(key, s.codec.Tombstone())
}

// appendRecord emits one full record line with a single write call.
// The file is in append mode, so the OS places the whole line at end
// of file atomically with respect to other append-mode writers.
func (s *Store[T]) appendRecord(key, value string) error {
	h := s.h
	h.mu.Lock()
	defer h.mu.Unlock()

	// most records are small, don't keep a huge buffer around
	if cap(h.buf) > 1024*1024 {
		h.buf = nil
	}
	h.buf = encodeRecord(h.buf[:0], key, value)
	if _, err := h.file.Write(h.buf); err != nil {
		return writeErr(err)
	}
	return nil
}

// Get returns the current value for key and whether it is present.
// A key that was never written and a key whose latest record is a
// tombstone are indistinguishable: both return present == false.
func (s *Store[T]) Get(key string) (T, bool, error) {
	type found struct {
		value   T
		present bool
	}
	var zero T
	if err := ValidateKey(key); err != nil {
		return zero, false, err
	}
	out, err := scan(s, func(k, v string, out *found) error {
		if k != key {
			return nil
		}
		if v == s.codec.Tombstone() {
			*out = found{}
			return nil
		}
		value, err := s.codec.Decode(v)
		if err != nil {
			return readErr(err)
		}
		*out = found{value: value, present: true}
		return nil
	})
	if err != nil {
		return zero, false, err
	}
	return out.value, out.present, nil
}

// Contains reports whether key currently has a live value. It compares
// record text against the tombstone literal and never decodes values.
func (s *Store[T]) Contains(key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}
	return scan(s, func(k, v string, out *bool) error {
		if k == key {
			*out = v != s.codec.Tombstone()
		}
		return nil
	})
}

// LoadMap folds the whole log into a map: live records insert,
// tombstones remove. The result is never nil.
func (s *Store[T]) LoadMap() (map[string]T, error) {
	out, err := scan(s, func(k, v string, out *map[string]T) error {
		if *out == nil {
			*out = map[string]T{}
		}
		if v == s.codec.Tombstone() {
			delete(*out, k)
			return nil
		}
		value, err := s.codec.Decode(v)
		if err != nil {
			return readErr(err)
		}
		(*out)[k] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]T{}
	}
	return out, nil
}

// scan rewinds the file and calls fn for every record in append order,
// accumulating into a zero-valued Output. It holds the store mutex for
// the whole pass, so the result reflects every append that completed
// before the scan started. The first error from I/O, record parsing or
// fn aborts the scan.
//
// Get, Contains and LoadMap are reducers over scan; visiting records
// oldest to newest is what makes their last-write-wins behavior fall
// out of overwriting the slot on every match.
//
// scan is a free function because Go methods cannot introduce the
// Output type parameter.
func scan[T, Output any](s *Store[T], fn func(key, value string, out *Output) error) (Output, error) {
	h := s.h
	h.mu.Lock()
	defer h.mu.Unlock()

	var out Output
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return out, readErr(err)
	}
	// read lines with ReadString rather than bufio.Scanner: lines are
	// bounded only by memory, not by a scanner token limit
	reader := bufio.NewReader(h.file)
	for lineNo := 0; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return out, readErr(err)
		}
		if line == "" && err == io.EOF {
			return out, nil
		}
		// trim the terminator: "\n" or "\r\n"
		if n := len(line); n > 0 && line[n-1] == '\n' {
			line = strings.TrimSuffix(line[:n-1], "\r")
		}
		key, value, serr := splitRecord(line, lineNo)
		if serr != nil {
			return out, serr
		}
		if ferr := fn(key, value, &out); ferr != nil {
			return out, ferr
		}
		// a final line without '\n' is still a record
		if err == io.EOF {
			return out, nil
		}
	}
}
