package faidx

import (
	"fmt"
	"io"
)

// Fetch reads the residues of region from the sequence file behind r,
// using the entry's line metrics to turn residue positions into byte
// offsets. The result is exactly the substring a full scan of the record
// (terminators stripped) would yield for the same range.
//
// An unset start is treated as 0 and an unset end as the record length;
// both bounds clamp to the record without error, and an inverted range
// yields an empty result. Only a record with no residues rejects a
// non-empty request, with ErrOutOfRange.
//
// r must support independent positioned reads; *os.File does. Fetch never
// moves a shared file cursor, so concurrent fetches against the same
// reader are safe.
func Fetch(r io.ReaderAt, entry Entry, region Region) ([]byte, error) {
	if entry.LineBases == 0 {
		// No sequence data. Requests covering a positive range cannot be
		// clamped into existence.
		begin := max(region.Start, 0)
		end := region.End
		if end < 0 {
			end = entry.Length
		}
		if end > begin {
			return nil, fmt.Errorf("%w: %s has no sequence data", ErrOutOfRange, entry.Name)
		}
		return []byte{}, nil
	}

	begin := region.Start
	if begin < 0 {
		begin = 0
	}
	end := region.End
	if end < 0 {
		end = entry.Length
	}
	begin = min(begin, entry.Length)
	end = min(end, entry.Length)
	if end < begin {
		end = begin
	}
	n := end - begin
	if n == 0 {
		return []byte{}, nil
	}

	// Byte positions of the first and last requested residue.
	startByte := entry.DataOffset + (begin/entry.LineBases)*entry.LineBytes + begin%entry.LineBases
	last := end - 1
	endByte := entry.DataOffset + (last/entry.LineBases)*entry.LineBytes + last%entry.LineBases + 1

	buf := make([]byte, endByte-startByte)
	if _, err := r.ReadAt(buf, startByte); err != nil {
		return nil, fmt.Errorf("faidx: fetch %s: %w", entry.Name, err)
	}

	// Copy residues out, skipping the terminator bytes at each wrapped
	// line boundary.
	term := entry.LineBytes - entry.LineBases
	out := make([]byte, 0, n)
	inLine := begin % entry.LineBases
	var i int64
	for int64(len(out)) < n {
		take := entry.LineBases - inLine
		if rem := n - int64(len(out)); take > rem {
			take = rem
		}
		out = append(out, buf[i:i+take]...)
		i += take + term
		inLine = 0
	}
	return out, nil
}
