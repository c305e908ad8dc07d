package faidx

import "iter"

// Entry describes one record of a sequence file.
//
// All offsets and widths are in bytes except Length and LineBases, which
// count residues. A record with no data lines has Length, LineBases and
// LineBytes all zero.
type Entry struct {
	// Name is the record identifier: the first whitespace-delimited token
	// of the record's name line.
	Name string

	// Length is the total residue count of the record.
	Length int64

	// DataOffset is the absolute byte offset of the record's first residue,
	// immediately after the name line and its terminator.
	DataOffset int64

	// LineBases is the number of residues on each full wrapped line. The
	// final line of a record may be shorter, never longer.
	LineBases int64

	// LineBytes is the byte width of each full wrapped line: LineBases plus
	// the terminator width used by that record (1 for "\n", 2 for "\r\n").
	LineBytes int64
}

// Index is an ordered, immutable mapping from record name to Entry.
//
// Entries keep the order in which records appear in the source file. An
// Index is safe for concurrent use once built or loaded.
type Index struct {
	entries []Entry
	byName  map[string]int
}

// newIndex builds an Index from entries, which must already be validated
// for name uniqueness.
func newIndex(entries []Entry) *Index {
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		byName[e.Name] = i
	}
	return &Index{entries: entries, byName: byName}
}

// Lookup returns the entry for the given record name.
// Returns false if the name is not present.
func (idx *Index) Lookup(name string) (Entry, bool) {
	i, ok := idx.byName[name]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

// At returns the i-th entry in source-file order.
func (idx *Index) At(i int) Entry {
	return idx.entries[i]
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Names returns all record names in source-file order.
func (idx *Index) Names() []string {
	names := make([]string, len(idx.entries))
	for i, e := range idx.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns an iterator over all entries in source-file order.
func (idx *Index) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range idx.entries {
			if !yield(e) {
				return
			}
		}
	}
}
