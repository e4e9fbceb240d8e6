package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"

	"github.com/anacrolix/blake2bench"
)

type args struct {
	Filepath   string                    `arg:"-f,--filepath,required" help:"file to hash"`
	Trials     int                       `arg:"-n,--trials" default:"128" help:"trials per backend"`
	BufferSize int                       `arg:"--buffer-size" default:"4096" help:"read chunk size in bytes"`
	Backends   []blake2bench.BackendKind `arg:"--backends" help:"backends to run: xcrypto, rfc, simd (default all)"`
	Concurrent bool                      `arg:"--concurrent" help:"run backends concurrently"`
	NoProgress bool                      `arg:"--no-progress" help:"don't show progress"`
}

func (args) Description() string {
	return "Blake2b 256-bit Hashing Benchmark"
}

func main() {
	err := mainErr()
	envpprof.Stop()
	if err != nil {
		log.Printf("error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	var args args
	arg.MustParse(&args)
	kinds := args.Backends
	if len(kinds) == 0 {
		kinds = blake2bench.AllBackends
	}
	opts := blake2bench.RunOpts{
		Path:       args.Filepath,
		Trials:     args.Trials,
		BufferSize: args.BufferSize,
		Concurrent: args.Concurrent,
	}
	reporter := &blake2bench.TextReporter{
		Out:      os.Stdout,
		Deferred: args.Concurrent,
	}
	if !args.NoProgress {
		reporter.ProgressOut = os.Stderr
	}
	_, err := blake2bench.BenchAll(opts, kinds, reporter)
	if err != nil {
		return fmt.Errorf("benchmarking: %w", err)
	}
	return nil
}
