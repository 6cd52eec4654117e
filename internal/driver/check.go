// Package driver orchestrates checking: load, parse, collect attributes, run
// the rule engine, and (optionally) cache results per file content hash.
package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"pystyle/internal/analyze"
	"pystyle/internal/check"
	"pystyle/internal/diag"
	"pystyle/internal/lexer"
	"pystyle/internal/parser"
	"pystyle/internal/source"
	"pystyle/internal/token"
)

// Options configures a check run.
type Options struct {
	// MaxDiagnostics caps the bag per file.
	MaxDiagnostics int
	// Cache enables the content-hash result cache when non-nil.
	Cache *DiskCache
}

// Result holds the outcome for one file.
type Result struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	// Skipped is non-nil when the file could not be analyzed (load or parse
	// failure). A skipped file produces no diagnostics.
	Skipped error
	// Cached marks a result served from the disk cache.
	Cached bool
}

// Check analyzes a single file.
func Check(ctx context.Context, path string, opts Options) (*source.FileSet, Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, Result{}, err
	}
	fileSet := source.NewFileSet()
	return fileSet, checkFile(fileSet, path, opts), nil
}

// CheckDir analyzes every direct entry of dir in parallel. Entries are taken
// in name order without any extension filter; subdirectories are skipped.
// Result order matches traversal order regardless of scheduling.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []Result, error) {
	files, err := listFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Loading mutates the FileSet, so it happens up front on one goroutine.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Result indexes are unique per goroutine, no mutex needed.
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				results[i] = Result{
					Path:    path,
					Bag:     diag.NewBag(opts.MaxDiagnostics),
					Skipped: loadErr,
				}
				return nil
			}

			results[i] = checkLoaded(fileSet, path, fileIDs[path], opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// Tokenize scans a single file into its token stream, for debugging.
func Tokenize(path string) (*source.FileSet, []token.Token, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, err
	}
	toks, err := lexer.Scan(fileSet.Get(fileID))
	if err != nil {
		return fileSet, nil, err
	}
	return fileSet, toks, nil
}

// listFiles returns the regular entries of dir in name order. Directories are
// skipped; no name filtering is applied.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func checkFile(fileSet *source.FileSet, path string, opts Options) Result {
	fileID, err := fileSet.Load(path)
	if err != nil {
		return Result{
			Path:    path,
			Bag:     diag.NewBag(opts.MaxDiagnostics),
			Skipped: err,
		}
	}
	return checkLoaded(fileSet, path, fileID, opts)
}

// checkLoaded runs the per-file pipeline: cache lookup, parse, attribute
// collection, rule engine, cache store. Cache failures are non-fatal; the
// file is simply re-checked.
func checkLoaded(fileSet *source.FileSet, path string, fileID source.FileID, opts Options) Result {
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(file.Hash, &payload); err == nil && ok {
			return diskPayloadToResult(&payload, path, fileID, opts.MaxDiagnostics)
		}
	}

	res := Result{
		Path:   path,
		FileID: fileID,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}

	module, err := parser.Parse(file)
	if err != nil {
		res.Skipped = err
	} else {
		attrs := analyze.Collect(module)
		engine := check.New(attrs)
		engine.Run(file, diag.BagReporter{Bag: res.Bag})
	}

	if opts.Cache != nil {
		// Best effort; a write failure never fails the run.
		_ = opts.Cache.Put(file.Hash, resultToDiskPayload(&res, file.Hash))
	}
	return res
}
