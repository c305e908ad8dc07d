package faidx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultIndexSuffix is appended to a sequence file path to form the
// default index path.
const DefaultIndexSuffix = ".fai"

// WriteIndex writes the index in its persisted form: one tab-separated
// line per entry (name, length, data offset, line bases, line bytes), in
// build order.
func WriteIndex(w io.Writer, idx *Index) error {
	bw := bufio.NewWriter(w)
	for e := range idx.Entries() {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%d\n",
			e.Name, e.Length, e.DataOffset, e.LineBases, e.LineBytes); err != nil {
			return fmt.Errorf("faidx: write index: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("faidx: write index: %w", err)
	}
	return nil
}

// WriteIndexFile writes the index to path atomically (temp file + rename),
// so a failed write never leaves a truncated index behind.
func WriteIndexFile(path string, idx *Index) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".fai-*")
	if err != nil {
		return fmt.Errorf("faidx: write index: %w", err)
	}
	tmpPath := tmp.Name()

	if err := WriteIndex(tmp, idx); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("faidx: write index: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("faidx: write index: %w", err)
	}
	return nil
}

// ReadIndex parses a persisted index back into an Index.
//
// Every line must have exactly five tab-separated fields with non-negative
// numeric values and a unique name; violations are reported as a
// CorruptIndexError with the offending line number.
func ReadIndex(r io.Reader) (*Index, error) {
	return readIndex(r, "")
}

// ReadIndexFile reads an index from path. A missing file is reported as an
// error wrapping fs.ErrNotExist so callers can fall back to building.
func ReadIndexFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("faidx: read index: %w", err)
	}
	defer f.Close()
	return readIndex(f, path)
}

func readIndex(r io.Reader, path string) (*Index, error) {
	var (
		entries []Entry
		seen    = map[string]struct{}{}
		scanner = bufio.NewScanner(r)
		line    int
	)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)

	corrupt := func(reason string) error {
		return &CorruptIndexError{Path: path, Line: line, Reason: reason}
	}

	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 5 {
			return nil, corrupt(fmt.Sprintf("expected 5 tab-separated fields, got %d", len(fields)))
		}
		name := fields[0]
		if name == "" {
			return nil, corrupt("empty record name")
		}
		if _, dup := seen[name]; dup {
			return nil, corrupt(fmt.Sprintf("duplicate record name %q", name))
		}
		seen[name] = struct{}{}

		nums := make([]int64, 4)
		for i, field := range fields[1:] {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil || v < 0 {
				return nil, corrupt(fmt.Sprintf("field %d is not a non-negative integer: %q", i+2, field))
			}
			nums[i] = v
		}
		e := Entry{
			Name:       name,
			Length:     nums[0],
			DataOffset: nums[1],
			LineBases:  nums[2],
			LineBytes:  nums[3],
		}
		if e.LineBytes < e.LineBases {
			return nil, corrupt("line bytes smaller than line bases")
		}
		if e.Length > 0 && e.LineBases == 0 {
			return nil, corrupt("record has residues but no line width")
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("faidx: read index: %w", err)
	}
	return newIndex(entries), nil
}
