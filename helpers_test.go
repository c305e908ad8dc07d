package faidx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFasta writes content to a temp sequence file and returns its path.
func writeFasta(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fullScan concatenates the data-line residues of the named record by
// scanning the whole file, the reference behaviour the index must match.
func fullScan(t *testing.T, content, name string) string {
	t.Helper()
	var (
		out []byte
		in  bool
	)
	for _, line := range splitKeepless(content) {
		if len(line) > 0 && line[0] == '>' {
			tok := line[1:]
			for i := 0; i < len(tok); i++ {
				if tok[i] == ' ' || tok[i] == '\t' {
					tok = tok[:i]
					break
				}
			}
			in = tok == name
			continue
		}
		if in {
			out = append(out, line...)
		}
	}
	return string(out)
}

// splitKeepless splits content into lines with terminators removed.
func splitKeepless(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			line := content[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
