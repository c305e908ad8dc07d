package faidx

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// builderConfig holds configuration for index building.
type builderConfig struct {
	logger *slog.Logger
}

// BuildOption configures index building.
type BuildOption func(*builderConfig)

// BuildWithLogger sets an optional logger for build progress.
func BuildWithLogger(l *slog.Logger) BuildOption {
	return func(cfg *builderConfig) {
		cfg.logger = l
	}
}

// Build scans the sequence file at path once and returns its index.
//
// Records start at lines beginning with '>'; the record name is the first
// whitespace-delimited token after it. Every line of a record except the
// last must have the same width; the last may be shorter. Violations are
// reported as a MalformedSourceError carrying the byte offset.
func Build(path string, opts ...BuildOption) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("faidx: build index: %w", err)
	}
	defer f.Close()
	return buildFrom(f, path, opts...)
}

// BuildReader is like Build but scans an already-open stream. Errors carry
// no path.
func BuildReader(r io.Reader, opts ...BuildOption) (*Index, error) {
	return buildFrom(r, "", opts...)
}

func buildFrom(r io.Reader, path string, opts ...BuildOption) (*Index, error) {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var (
		entries []Entry
		seen    = map[string]struct{}{}
		cur     *Entry
		br      = bufio.NewReaderSize(r, 64<<10)
		offset  int64

		// A data line narrower than the record's full width (or missing the
		// record's terminator) must be the record's last line.
		mustBeLast bool
		sawData    bool
	)

	malformed := func(off int64, reason string) error {
		return &MalformedSourceError{Path: path, Offset: off, Reason: reason}
	}

	finish := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			lineOffset := offset
			offset += int64(len(raw))

			data := strings.TrimSuffix(strings.TrimSuffix(string(raw), "\n"), "\r")
			if strings.HasPrefix(data, ">") {
				finish()
				fields := strings.Fields(data[1:])
				if len(fields) == 0 {
					return nil, malformed(lineOffset, "empty record name")
				}
				name := fields[0]
				if _, dup := seen[name]; dup {
					return nil, malformed(lineOffset, fmt.Sprintf("duplicate record name %q", name))
				}
				seen[name] = struct{}{}
				cur = &Entry{Name: name, DataOffset: offset}
				mustBeLast, sawData = false, false
			} else {
				if cur == nil {
					return nil, malformed(lineOffset, "sequence data before first name line")
				}
				if mustBeLast {
					return nil, malformed(lineOffset, fmt.Sprintf("uneven line width in record %q", cur.Name))
				}
				residues := int64(len(data))
				lineBytes := int64(len(raw))
				if !sawData {
					// First data line fixes the record's line metrics.
					cur.LineBases = residues
					cur.LineBytes = lineBytes
					sawData = true
				} else if residues > cur.LineBases {
					return nil, malformed(lineOffset, fmt.Sprintf("uneven line width in record %q", cur.Name))
				}
				if residues < cur.LineBases || lineBytes != cur.LineBytes {
					mustBeLast = true
				}
				cur.Length += residues
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("faidx: build index: %w", err)
		}
	}
	finish()

	// Normalize records with no residues so line metrics read as absent.
	for i := range entries {
		if entries[i].Length == 0 {
			entries[i].LineBases = 0
			entries[i].LineBytes = 0
		}
	}

	log.Debug("index built", "path", path, "records", len(entries))
	return newIndex(entries), nil
}
