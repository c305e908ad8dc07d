// Package faidx provides indexed random access to wrapped sequence files
// (FASTA-style: a name line followed by fixed-width lines of residues).
//
// An index holds one entry per record: its name, total residue count, the
// byte offset of its first residue, and the width of its wrapped lines in
// residues and in bytes. With those five numbers any subsequence can be
// located by arithmetic and read with positioned reads, without scanning
// the file.
//
// The index is persisted as a plain-text tab-separated file (one line per
// record, samtools .fai compatible) and is loaded fully into memory before
// queries. Indexes are immutable values: adding a record means rebuilding.
//
// Typical use:
//
//	f, err := faidx.Open("ref.fa") // loads ref.fa.fai, building it if missing
//	if err != nil { ... }
//	defer f.Close()
//	seq, err := f.FetchRegion("chr1:1,000-2,000")
package faidx
