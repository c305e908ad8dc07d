package faidx

import (
	"fmt"
	"strconv"
)

// Region is a subsequence request: a record name plus an optional 0-based,
// half-open coordinate range [Start, End). Start and End are -1 when unset;
// an unset Start means the beginning of the record, an unset End its end.
type Region struct {
	Name  string
	Start int64
	End   int64
}

// WholeRecord returns a Region covering all of the named record.
func WholeRecord(name string) Region {
	return Region{Name: name, Start: -1, End: -1}
}

// String renders the canonical 1-based form of the region: "name",
// "name:start" or "name:start-end". Parsing the result yields the same
// numeric values back.
func (r Region) String() string {
	switch {
	case r.Start < 0:
		return r.Name
	case r.End < 0:
		return r.Name + ":" + strconv.FormatInt(r.Start+1, 10)
	default:
		// End is the exclusive bound, equal to the 1-based inclusive end.
		return fmt.Sprintf("%s:%d-%d", r.Name, r.Start+1, r.End)
	}
}

// regionState is the parser state: which field is being read.
type regionState int

const (
	readingName regionState = iota
	readingStart
	readingEnd
)

// ParseRegion parses a region string of the form NAME, NAME:START or
// NAME:START-END. START and END are 1-based and END is inclusive; the
// returned Region is 0-based and half-open. Commas are accepted as digit
// group separators inside START and END (and dashes inside END) and are
// ignored. START and END must be positive.
func ParseRegion(s string) (Region, error) {
	reg := Region{Start: -1, End: -1}
	state := readingName
	var num int64
	sawDigit := false

	fail := func(field, reason string) (Region, error) {
		return Region{}, &ParseError{Region: s, Field: field, Reason: reason}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case readingName:
			if c == ':' {
				if i == 0 {
					return fail("name", "empty sequence name")
				}
				reg.Name = s[:i]
				state = readingStart
			}
			// Any other character is part of the name.

		case readingStart:
			switch {
			case c >= '0' && c <= '9':
				if num > (1<<62)/10 {
					return fail("start", "number too large")
				}
				num = num*10 + int64(c-'0')
				sawDigit = true
			case c == ',':
				// Digit group separator, ignored.
			case c == '-':
				if !sawDigit {
					return fail("start", "expected digits before '-'")
				}
				if num == 0 {
					return fail("start", "position must be positive")
				}
				reg.Start = num - 1 // 1-based input to 0-based.
				num, sawDigit = 0, false
				state = readingEnd
			default:
				return fail("start", fmt.Sprintf("unexpected character %q", c))
			}

		case readingEnd:
			switch {
			case c >= '0' && c <= '9':
				if num > (1<<62)/10 {
					return fail("end", "number too large")
				}
				num = num*10 + int64(c-'0')
				sawDigit = true
			case c == ',' || c == '-':
				// Digit group separator, ignored.
			default:
				return fail("end", fmt.Sprintf("unexpected character %q", c))
			}
		}
	}

	switch state {
	case readingName:
		if s == "" {
			return fail("name", "empty sequence name")
		}
		reg.Name = s
	case readingStart:
		if !sawDigit {
			return fail("start", "expected digits after ':'")
		}
		if num == 0 {
			return fail("start", "position must be positive")
		}
		reg.Start = num - 1
	case readingEnd:
		if !sawDigit {
			return fail("end", "expected digits after '-'")
		}
		if num == 0 {
			return fail("end", "position must be positive")
		}
		// The 1-based inclusive end is already the 0-based exclusive bound.
		reg.End = num
	}
	return reg, nil
}
