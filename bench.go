package blake2bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/anacrolix/log"
	"golang.org/x/sync/errgroup"
)

// Observer receives the progress of benchmarks. Calls for one backend are sequential, but
// different backends may call concurrently if RunOpts.Concurrent is set.
type Observer interface {
	Started(kind BackendKind, totalBytes int64)
	// Bytes hashed so far across all trials of the backend.
	Progressed(kind BackendKind, doneBytes int64)
	Finished(Result)
}

type nopObserver struct{}

func (nopObserver) Started(BackendKind, int64)    {}
func (nopObserver) Progressed(BackendKind, int64) {}
func (nopObserver) Finished(Result)               {}

// Probes the target's size. This is done before any benchmarking so a bad path fails fast.
func FileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, &FileOpenError{Path: path, Err: err}
	}
	if fi.IsDir() {
		return 0, &FileOpenError{Path: path, Err: errors.New("is a directory")}
	}
	return fi.Size(), nil
}

// Bench runs opts.Trials trials of the given backend over opts.Path and times them together. Any
// error aborts the whole benchmark for the backend and no Result is returned.
func Bench(opts RunOpts, kind BackendKind, obs Observer) (Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	size, err := FileSize(opts.Path)
	if err != nil {
		return Result{}, err
	}
	return bench(context.Background(), opts, kind, size, obs)
}

// Checks ctx between trials, so a failing sibling in concurrent mode stops the run promptly.
func bench(ctx context.Context, opts RunOpts, kind BackendKind, size int64, obs Observer) (ret Result, err error) {
	if obs == nil {
		obs = nopObserver{}
	}
	logger := opts.Logger.Value.WithNames(kind.String())
	logger.Levelf(log.Debug, "starting %v trials over %q (%v bytes)", opts.Trials, opts.Path, size)
	total := size * int64(opts.Trials)
	obs.Started(kind, total)
	buf := make([]byte, opts.BufferSize)
	var (
		digest      Digest
		firstDigest setOnce[Digest]
		bytesRead   int64
	)
	// Observers are called at most about once per percent, plus at the end of each trial, to keep
	// them out of the per-chunk path inside the timed loop.
	var reported, nextReport int64
	step := total / 100
	if step < 1 {
		step = 1
	}
	report := func(done int64) {
		if done == reported {
			return
		}
		reported = done
		nextReport = done + step
		obs.Progressed(kind, done)
	}
	started := time.Now()
	for i := 0; i < opts.Trials; i++ {
		if err = ctx.Err(); err != nil {
			err = fmt.Errorf("%v: before trial %v: %w", kind, i, err)
			return
		}
		var n int64
		n, err = runFileTrial(opts.Path, kind, buf, &digest, func(n int64) {
			if done := bytesRead + n; done >= nextReport {
				report(done)
			}
		})
		if err != nil {
			err = fmt.Errorf("%v: trial %v: %w", kind, i, err)
			return
		}
		bytesRead += n
		report(bytesRead)
		if !firstDigest.Ok() {
			firstDigest.Set(digest)
		} else if digest != firstDigest.Value() {
			logger.Levelf(log.Warning, "trial %v digest %v differs from first trial digest %v", i, digest, firstDigest.Value())
		}
	}
	elapsed := time.Since(started)
	if expected := size * int64(opts.Trials); bytesRead != expected {
		logger.Levelf(log.Warning, "read %v bytes over %v trials, expected %v from file size: did the file change?", bytesRead, opts.Trials, expected)
	}
	ret = Result{
		Backend:    kind,
		Digest:     digest,
		Trials:     opts.Trials,
		FileSize:   size,
		BytesRead:  bytesRead,
		Elapsed:    elapsed,
		Throughput: throughput(size, opts.Trials, elapsed),
	}
	logger.Levelf(log.Debug, "finished in %v", elapsed)
	obs.Finished(ret)
	return
}

// Opens its own reader and backend, so trials share nothing but the path and buf.
func runFileTrial(path string, kind BackendKind, buf []byte, out *Digest, progress TrialProgress) (n int64, err error) {
	r, err := NewChunkedReader(path)
	if err != nil {
		return
	}
	defer r.Close()
	b := kind.New()
	n, err = RunTrial(r, b, buf, progress)
	if err != nil {
		return
	}
	b.Finalize(out)
	return
}

// BenchAll benchmarks each kind over the same file, returning results in the order of kinds.
// The file size is probed once before any backend runs.
func BenchAll(opts RunOpts, kinds []BackendKind, obs Observer) ([]Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	size, err := FileSize(opts.Path)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(kinds))
	if !opts.Concurrent {
		for i, kind := range kinds {
			results[i], err = bench(context.Background(), opts, kind, size, obs)
			if err != nil {
				return nil, err
			}
		}
		return results, nil
	}
	eg, ctx := errgroup.WithContext(context.Background())
	for i, kind := range kinds {
		i, kind := i, kind
		eg.Go(func() (err error) {
			results[i], err = bench(ctx, opts, kind, size, obs)
			return
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
