// Package output writes fetched subsequences as FASTA records and selects
// an optional compressed destination by file extension.
package output

import (
	"fmt"
	"io"
)

// DefaultWrap is the line width used when callers pass no explicit width.
const DefaultWrap = 60

// WriteRecord writes one FASTA record: a '>' name line followed by the
// sequence wrapped at width residues per line. A width of zero or less
// writes the sequence on a single line. An empty sequence still produces
// the name line.
func WriteRecord(w io.Writer, name string, seq []byte, width int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", name); err != nil {
		return err
	}
	if width <= 0 {
		width = len(seq)
	}
	for len(seq) > 0 {
		n := min(width, len(seq))
		if _, err := w.Write(seq[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}
