// Package app implements the faidx command line.
package app

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/seqtools/faidx"
	"github.com/seqtools/faidx/internal/output"
)

// Run executes the faidx command: index a sequence file and optionally
// fetch regions from it. Returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("faidx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		indexPath = fs.String("i", "", "index file path (default: FASTA path with \".fai\" appended)")
		outPath   = fs.String("o", "", "output file (default: stdout; .gz/.zst select compression)")
		wrap      = fs.Int("w", output.DefaultWrap, "wrap output at this many residues per line (0 = single line)")
		verbose   = fs.Bool("v", false, "verbose logging to stderr")
	)
	fs.Usage = func() {
		fmt.Fprint(stderr, "usage: faidx [-i INDEX] [-o OUT] [-w WIDTH] [-v] FASTA [REGION ...]\n\n")
		fmt.Fprint(stderr, "Indexes FASTA (reusing an existing index when present) and prints the\n")
		fmt.Fprint(stderr, "requested regions as FASTA records. Regions are 1-based inclusive:\n")
		fmt.Fprint(stderr, "NAME, NAME:START or NAME:START-END, e.g. chr1:1,000-2,000.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fastaPath := fs.Arg(0)
	regions := fs.Args()[1:]

	opts := []faidx.Option{faidx.WithLogger(logger)}
	if *indexPath != "" {
		opts = append(opts, faidx.WithIndexPath(*indexPath))
	}
	f, err := faidx.Open(fastaPath, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer f.Close()

	if len(regions) == 0 {
		// Indexing only.
		return 0
	}

	// The index is immutable and fetches use independent positioned reads,
	// so regions can be fetched concurrently. Output keeps argument order.
	results := make([][]byte, len(regions))
	var g errgroup.Group
	for i, spec := range regions {
		g.Go(func() error {
			seq, err := f.FetchRegion(spec)
			if err != nil {
				return err
			}
			results[i] = seq
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var dst io.Writer = stdout
	var outFile *os.File
	if *outPath != "" {
		outFile, err = os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		dst = outFile
	}
	bw := bufio.NewWriter(dst)
	cw, err := output.NewWriter(bw, *outPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	writeErr := func() error {
		for i, spec := range regions {
			if err := output.WriteRecord(cw, spec, results[i], *wrap); err != nil {
				return err
			}
		}
		if err := cw.Close(); err != nil {
			return err
		}
		return bw.Flush()
	}()
	if outFile != nil {
		if err := outFile.Close(); err != nil && writeErr == nil {
			writeErr = err
		}
	}
	if writeErr != nil {
		fmt.Fprintln(stderr, writeErr)
		return 1
	}
	return 0
}
