package acsingest

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/msagent-tools/acsingest/acserror"
)

// maxBatchWorkers caps the worker pool regardless of GOMAXPROCS, the
// same defensive cap the teacher applies to its row-parallel WebP
// encoder (internal/lossy/encode_parallel.go caps at 6 workers
// independent of core count).
const maxBatchWorkers = 6

// BatchResult pairs one input path with its outcome.
type BatchResult struct {
	InputPath string
	Result    *Result
	Err       error
}

// BatchIngest runs Ingest once per entry in inputPaths, writing each
// one's output under its own subdirectory of outputRoot (named after
// the input file's base name without extension). Each goroutine owns
// its own coordinator call and output subdirectory; no mutable state
// is shared across them. Grounded on the teacher's
// runtime-sized worker pool (internal/lossy/encode_parallel.go), here
// simplified from row-claiming shared-state workers to embarrassingly
// parallel per-file tasks: there is no cross-file synchronization to
// do, so the pool is a plain bounded task channel rather than the
// teacher's atomic row counter plus condition variables.
func BatchIngest(inputPaths []string, outputRoot string, opts Options) []BatchResult {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > maxBatchWorkers {
		numWorkers = maxBatchWorkers
	}
	if numWorkers > len(inputPaths) {
		numWorkers = len(inputPaths)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	results := make([]BatchResult, len(inputPaths))
	tasks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				results[i] = runOne(inputPaths[i], outputRoot, opts)
			}
		}()
	}
	for i := range inputPaths {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return results
}

func runOne(inputPath, outputRoot string, opts Options) BatchResult {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	perFileOpts := opts
	perFileOpts.OutputDirectory = filepath.Join(outputRoot, name)
	if perFileOpts.Logger != nil {
		perFileOpts.Logger = perFileOpts.Logger.With(zap.String("input", inputPath))
	}

	blob, err := os.ReadFile(inputPath)
	if err != nil {
		return BatchResult{InputPath: inputPath, Err: acserror.Wrap(acserror.IoFailed, err, "batch: read "+inputPath)}
	}

	result, err := Ingest(blob, inputPath, perFileOpts)
	return BatchResult{InputPath: inputPath, Result: result, Err: err}
}
