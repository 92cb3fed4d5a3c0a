// Package roundtrip drives the parse/print/reparse cycle over GraphQL files
// and verifies that printing loses no information: the reparsed document must
// be semantically equal to the original and the canonical text form must be
// stable under a second print.
package roundtrip

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	log "github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/jensneuse/graphql-frontend/pkg/ast"
	"github.com/jensneuse/graphql-frontend/pkg/astdiff"
	"github.com/jensneuse/graphql-frontend/pkg/astparser"
	"github.com/jensneuse/graphql-frontend/pkg/astprinter"
)

// DefaultConcurrency is the number of files processed in parallel by
// RunCorpus when not configured otherwise.
const DefaultConcurrency = 8

// ErrDocumentsNotEquivalent is returned when the reparsed document diverges
// from the originally parsed one. Path points at the first divergence.
type ErrDocumentsNotEquivalent struct {
	SourcePath string
	Path       ast.Path
}

func (e ErrDocumentsNotEquivalent) Error() string {
	return "documents not equivalent after printing: '" + e.SourcePath + "' diverges at: '" + e.Path.DotDelimitedString() + "'"
}

// ErrPrintUnstable is returned when printing the reparsed document produces
// different bytes than the first print. The canonical form must be a fixed
// point.
type ErrPrintUnstable struct {
	SourcePath string
}

func (e ErrPrintUnstable) Error() string {
	return "canonical form not stable under reprint: '" + e.SourcePath + "'"
}

type Options func(*Runner)

func WithLogger(logger log.Logger) Options {
	return func(r *Runner) {
		r.log = logger
	}
}

func WithConcurrency(concurrency int) Options {
	return func(r *Runner) {
		if concurrency > 0 {
			r.concurrency = concurrency
		}
	}
}

func WithMaxDepth(maxDepth int) Options {
	return func(r *Runner) {
		r.maxDepth = maxDepth
	}
}

// Runner owns the configuration of round trip runs. A Runner is safe for
// concurrent use, every file gets its own parser.
type Runner struct {
	log         log.Logger
	concurrency int
	maxDepth    int
}

func NewRunner(opts ...Options) *Runner {
	r := &Runner{
		log:         log.NoopLogger,
		concurrency: DefaultConcurrency,
		maxDepth:    astparser.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// File round trips a single file: parse sourcePath, write the canonical form
// to destPath, reparse the written bytes and verify equivalence and print
// stability. Parent directories of destPath are created as needed.
func (r *Runner) File(sourcePath, destPath string) error {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return errors.Wrap(err, "roundtrip.File: read source")
	}

	parser := astparser.NewParser(astparser.WithMaxDepth(r.maxDepth))

	document, err := parser.Parse(content, sourcePath)
	if err != nil {
		return errors.Wrapf(err, "roundtrip.File: parse '%s'", sourcePath)
	}

	printed, err := astprinter.PrintBytes(document)
	if err != nil {
		return errors.Wrapf(err, "roundtrip.File: print '%s'", sourcePath)
	}

	if err = os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return errors.Wrap(err, "roundtrip.File: create dest dir")
	}
	if err = os.WriteFile(destPath, printed, 0644); err != nil {
		return errors.Wrap(err, "roundtrip.File: write dest")
	}

	reparsed, err := parser.Parse(printed, destPath)
	if err != nil {
		return errors.Wrapf(err, "roundtrip.File: reparse '%s'", destPath)
	}

	if diff := astdiff.Diff(document, reparsed); diff.IsPresent() {
		return ErrDocumentsNotEquivalent{
			SourcePath: sourcePath,
			Path:       diff.Value(),
		}
	}

	reprinted, err := astprinter.PrintBytes(reparsed)
	if err != nil {
		return errors.Wrapf(err, "roundtrip.File: reprint '%s'", destPath)
	}

	fingerprint := xxhash.Sum64(printed)
	if fingerprint != xxhash.Sum64(reprinted) {
		return ErrPrintUnstable{SourcePath: sourcePath}
	}

	r.log.Debug("roundtrip.File: ok",
		log.String("sourcePath", sourcePath),
		log.String("destPath", destPath),
		log.String("fingerprint", strconv.FormatUint(fingerprint, 16)),
	)

	return nil
}

// Stats summarizes a corpus run.
type Stats struct {
	Processed uint32
	Failed    uint32
}

// RunCorpus round trips every .graphql and .graphqls file under sourceDir,
// mirroring the directory layout under destDir. Files are processed
// concurrently. The run continues past individual failures, the first
// failure is returned alongside the stats.
func (r *Runner) RunCorpus(sourceDir, destDir string) (Stats, error) {
	var paths []string
	err := filepath.WalkDir(sourceDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".graphql", ".graphqls":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return Stats{}, errors.Wrap(err, "roundtrip.RunCorpus: walk source dir")
	}

	var (
		processed = atomic.NewUint32(0)
		failed    = atomic.NewUint32(0)
		work      = make(chan string)
		wg        sync.WaitGroup

		errMu    sync.Mutex
		firstErr error
	)

	for i := 0; i < r.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sourcePath := range work {
				relativePath, relErr := filepath.Rel(sourceDir, sourcePath)
				if relErr != nil {
					relativePath = filepath.Base(sourcePath)
				}
				destPath := filepath.Join(destDir, relativePath)

				processed.Inc()
				if fileErr := r.File(sourcePath, destPath); fileErr != nil {
					failed.Inc()
					errMu.Lock()
					if firstErr == nil {
						firstErr = fileErr
					}
					errMu.Unlock()
					r.log.Error("roundtrip.RunCorpus: file failed",
						log.String("sourcePath", sourcePath),
						log.Error(fileErr),
					)
				}
			}
		}()
	}

	for _, path := range paths {
		work <- path
	}
	close(work)
	wg.Wait()

	stats := Stats{
		Processed: processed.Load(),
		Failed:    failed.Load(),
	}

	r.log.Debug("roundtrip.RunCorpus: done",
		log.String("sourceDir", sourceDir),
		log.Int("processed", int(stats.Processed)),
		log.Int("failed", int(stats.Failed)),
	)

	return stats, firstErr
}
