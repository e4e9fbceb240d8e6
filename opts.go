package blake2bench

import (
	"errors"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
)

const (
	DefaultTrials     = 128
	DefaultBufferSize = 4096
)

type RunOpts struct {
	// File to hash.
	Path string
	// Trials per backend. Zero means DefaultTrials.
	Trials int
	// Size of each chunk read from the file. Zero means DefaultBufferSize.
	BufferSize int
	// Run backends concurrently instead of one after the other. Each trial still has its own file
	// handle and hash state.
	Concurrent bool
	// If not set, a logger named for the package is derived from log.Default.
	Logger g.Option[log.Logger]
}

func (opts RunOpts) withDefaults() RunOpts {
	if opts.Trials == 0 {
		opts.Trials = DefaultTrials
	}
	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if !opts.Logger.Ok {
		opts.Logger.Set(log.Default.WithNames("blake2bench"))
	}
	return opts
}

func (opts RunOpts) Validate() error {
	opts = opts.withDefaults()
	if opts.Path == "" {
		return errors.New("no file path")
	}
	if opts.Trials < 1 {
		return errors.New("trials must be at least 1")
	}
	if opts.BufferSize < 1 {
		return errors.New("buffer size must be at least 1")
	}
	return nil
}
