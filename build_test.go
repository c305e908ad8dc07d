package faidx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_TwoRecords(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, ">seq1 first sequence\nACGTACGTAC\nACGTACGTAC\nACGT\n>seq2\nTTTT\n")
	idx, err := Build(path)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())

	e1, ok := idx.Lookup("seq1")
	require.True(t, ok)
	assert.Equal(t, Entry{
		Name:       "seq1",
		Length:     24,
		DataOffset: 21, // after ">seq1 first sequence\n"
		LineBases:  10,
		LineBytes:  11,
	}, e1)

	e2, ok := idx.Lookup("seq2")
	require.True(t, ok)
	assert.Equal(t, Entry{
		Name:       "seq2",
		Length:     4,
		DataOffset: 54, // after seq1's 27 data bytes and ">seq2\n"
		LineBases:  4,
		LineBytes:  5,
	}, e2)

	assert.Equal(t, []string{"seq1", "seq2"}, idx.Names())
}

func TestBuild_CRLFTerminators(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, ">a\r\nACGTAC\r\nGT\r\n")
	idx, err := Build(path)
	require.NoError(t, err)

	e, ok := idx.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, int64(8), e.Length)
	assert.Equal(t, int64(4), e.DataOffset)
	assert.Equal(t, int64(6), e.LineBases)
	assert.Equal(t, int64(8), e.LineBytes)
}

func TestBuild_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, ">a\nACGT\nAC")
	idx, err := Build(path)
	require.NoError(t, err)

	e, _ := idx.Lookup("a")
	assert.Equal(t, int64(6), e.Length)
	assert.Equal(t, int64(4), e.LineBases)
	assert.Equal(t, int64(5), e.LineBytes)
}

func TestBuild_SingleLineRecord(t *testing.T) {
	t.Parallel()

	// lineBases == length: the whole record is one wrapped line.
	path := writeFasta(t, ">a\nACGTACGT\n")
	idx, err := Build(path)
	require.NoError(t, err)

	e, _ := idx.Lookup("a")
	assert.Equal(t, int64(8), e.Length)
	assert.Equal(t, int64(8), e.LineBases)
}

func TestBuild_DegenerateRecord(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, ">empty\n>full\nAC\n")
	idx, err := Build(path)
	require.NoError(t, err)

	e, ok := idx.Lookup("empty")
	require.True(t, ok)
	assert.Equal(t, Entry{Name: "empty", Length: 0, DataOffset: 7, LineBases: 0, LineBytes: 0}, e)
}

func TestBuild_UnevenLineWidth(t *testing.T) {
	t.Parallel()

	// 60-residue first line, 55-residue second line, then more data: the
	// short line was not the record's last, so the source is malformed.
	content := ">chr\n" +
		strings.Repeat("A", 60) + "\n" +
		strings.Repeat("C", 55) + "\n" +
		strings.Repeat("G", 60) + "\n"
	path := writeFasta(t, content)

	_, err := Build(path)
	var merr *MalformedSourceError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, int64(5+61+56), merr.Offset)
	assert.Contains(t, merr.Reason, "uneven line width")
	assert.Equal(t, path, merr.Path)
}

func TestBuild_LineLongerThanFirst(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, ">chr\nACGT\nACGTACGT\n")
	_, err := Build(path)
	var merr *MalformedSourceError
	require.ErrorAs(t, err, &merr)
	assert.Contains(t, merr.Reason, "uneven line width")
}

func TestBuild_MixedTerminatorWidth(t *testing.T) {
	t.Parallel()

	// Same residue count but a different terminator mid-record breaks the
	// byte arithmetic and is rejected.
	path := writeFasta(t, ">chr\nACGT\r\nACGT\nACGT\n")
	_, err := Build(path)
	var merr *MalformedSourceError
	require.ErrorAs(t, err, &merr)
}

func TestBuild_DuplicateName(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, ">a\nAC\n>a\nGT\n")
	_, err := Build(path)
	var merr *MalformedSourceError
	require.ErrorAs(t, err, &merr)
	assert.Contains(t, merr.Reason, `duplicate record name "a"`)
	assert.Equal(t, int64(6), merr.Offset)
}

func TestBuild_DataBeforeFirstName(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, "ACGT\n>a\nAC\n")
	_, err := Build(path)
	var merr *MalformedSourceError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, int64(0), merr.Offset)
	assert.Contains(t, merr.Reason, "before first name line")
}

func TestBuild_EmptyName(t *testing.T) {
	t.Parallel()

	path := writeFasta(t, ">\nACGT\n")
	_, err := Build(path)
	var merr *MalformedSourceError
	require.ErrorAs(t, err, &merr)
	assert.Contains(t, merr.Reason, "empty record name")
}

func TestBuild_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Build(writeFasta(t, "") + ".nope")
	require.Error(t, err)
}

func TestBuildReader_EmptyInput(t *testing.T) {
	t.Parallel()

	idx, err := BuildReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestIndex_Entries_Order(t *testing.T) {
	t.Parallel()

	idx, err := BuildReader(strings.NewReader(">b\nAC\n>a\nGT\n>c\nTT\n"))
	require.NoError(t, err)

	var names []string
	for e := range idx.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
	assert.Equal(t, "a", idx.At(1).Name)

	_, ok := idx.Lookup("missing")
	assert.False(t, ok)
}
