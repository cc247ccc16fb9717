package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"comet/internal/config"
	"comet/internal/diag"
	"comet/internal/observ"
	"comet/internal/source"
)

// CheckDirResult holds the outcome for one file of a directory check.
type CheckDirResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// listSourceFiles returns the sorted list of files under dir accepted by
// the configured extension filter. Hidden directories are skipped.
func listSourceFiles(dir string, cfg config.Config) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if cfg.Lexer.WantsFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order regardless of walk details
	sort.Strings(files)
	return files, nil
}

// CheckDir lints every accepted file under dir. Files are independent, so
// they are processed in parallel with no shared state. A non-nil cache
// skips lexing and linting for files whose content hash was seen before.
func CheckDir(ctx context.Context, dir string, cfg config.Config, maxDiagnostics, jobs int, cache *Cache) (*source.FileSet, []CheckDirResult, error) {
	files, err := listSourceFiles(dir, cfg)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// preload sequentially: FileSet mutation is not synchronized
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

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// one slot per file: goroutines write disjoint indexes, no mutex
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOFileNotFound,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = CheckDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if cache != nil {
				if cached, ok := cache.Get(file, cfg); ok {
					cached.replay(fileID, bag)
					results[i] = CheckDirResult{Path: path, FileID: fileID, Bag: bag, FromCache: true}
					return nil
				}
			}

			checkFile(file, cfg, bag, observ.NewTimer())
			results[i] = CheckDirResult{Path: path, FileID: fileID, Bag: bag}

			if cache != nil {
				// cache failures must not fail the check
				_ = cache.Put(file, cfg, bag)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
