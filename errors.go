package faidx

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnknownSequence is returned when a region names a record absent
	// from the index.
	ErrUnknownSequence = errors.New("faidx: unknown sequence")

	// ErrOutOfRange is returned for a non-empty fetch against a record
	// with no sequence data.
	ErrOutOfRange = errors.New("faidx: region out of range")
)

// ParseError reports a malformed region string.
type ParseError struct {
	// Region is the full region string that failed to parse.
	Region string
	// Field names the part being parsed when the error occurred:
	// "name", "start" or "end".
	Field string
	// Reason describes what was wrong.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("faidx: parse region %q: %s: %s", e.Region, e.Field, e.Reason)
}

// MalformedSourceError reports an inconsistency found while building an
// index from a sequence file.
type MalformedSourceError struct {
	// Path is the sequence file being indexed.
	Path string
	// Offset is the byte offset at which the problem was detected.
	Offset int64
	// Reason describes the inconsistency (uneven line width, duplicate
	// name, data before the first name line).
	Reason string
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("faidx: malformed source %s at byte %d: %s", e.Path, e.Offset, e.Reason)
}

// CorruptIndexError reports a structural problem in a persisted index file.
type CorruptIndexError struct {
	// Path is the index file, when known.
	Path string
	// Line is the 1-based line number of the offending line.
	Line int
	// Reason describes the problem.
	Reason string
}

func (e *CorruptIndexError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("faidx: corrupt index line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("faidx: corrupt index %s line %d: %s", e.Path, e.Line, e.Reason)
}
