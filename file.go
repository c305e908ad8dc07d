package faidx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/sync/singleflight"
)

// buildGroup dedupes concurrent auto-builds of the same index path within
// the process. Cross-process coordination is the caller's responsibility.
var buildGroup singleflight.Group

// File is an open sequence file together with its loaded index.
//
// The index is immutable after Open and fetches use independent positioned
// reads, so a File is safe for concurrent fetches.
type File struct {
	f         *os.File
	idx       *Index
	path      string
	indexPath string
	logger    *slog.Logger
}

// Option configures Open.
type Option func(*File)

// WithIndexPath overrides the index file location. The default is the
// sequence file path with ".fai" appended.
func WithIndexPath(path string) Option {
	return func(f *File) {
		f.indexPath = path
	}
}

// WithLogger sets an optional logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *File) {
		f.logger = l
	}
}

// log returns the logger, falling back to a discard logger if nil.
func (f *File) log() *slog.Logger {
	if f.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.logger
}

// Open opens the sequence file at path read-only and loads its index.
//
// When the index file is missing, or exists but is structurally corrupt,
// Open builds the index from the sequence file and saves it atomically
// before returning. Concurrent Opens of the same index path share a single
// build. Other index read failures are returned as-is.
func Open(path string, opts ...Option) (*File, error) {
	f := &File{path: path}
	for _, opt := range opts {
		opt(f)
	}
	if f.indexPath == "" {
		f.indexPath = path + DefaultIndexSuffix
	}

	sf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("faidx: open: %w", err)
	}

	idx, err := ReadIndexFile(f.indexPath)
	if err != nil {
		var corrupt *CorruptIndexError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			f.log().Debug("index missing, building", "index", f.indexPath)
			idx, err = f.buildAndSave()
		case errors.As(err, &corrupt):
			f.log().Warn("rebuilding corrupt index", "index", f.indexPath, "error", err)
			idx, err = f.buildAndSave()
		}
		if err != nil {
			sf.Close()
			return nil, err
		}
	}

	f.f = sf
	f.idx = idx
	return f, nil
}

// buildAndSave builds the index from the sequence file, persists it, and
// returns the in-memory result. Concurrent callers for the same index path
// share one build.
func (f *File) buildAndSave() (*Index, error) {
	v, err, _ := buildGroup.Do(f.indexPath, func() (any, error) {
		idx, err := Build(f.path, BuildWithLogger(f.logger))
		if err != nil {
			return nil, err
		}
		if err := WriteIndexFile(f.indexPath, idx); err != nil {
			return nil, err
		}
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Index), nil
}

// Index returns the loaded index.
func (f *File) Index() *Index {
	return f.idx
}

// Fetch resolves the region's record name and reads its residues.
// Returns ErrUnknownSequence when the name is not in the index.
func (f *File) Fetch(region Region) ([]byte, error) {
	entry, ok := f.idx.Lookup(region.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSequence, region.Name)
	}
	return Fetch(f.f, entry, region)
}

// FetchRegion parses a region string (see ParseRegion) and fetches it.
func (f *File) FetchRegion(spec string) ([]byte, error) {
	region, err := ParseRegion(spec)
	if err != nil {
		return nil, err
	}
	return f.Fetch(region)
}

// Close closes the underlying sequence file.
func (f *File) Close() error {
	return f.f.Close()
}
