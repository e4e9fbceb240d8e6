package blake2bench

import (
	"time"
)

// The outcome of all trials for one backend.
type Result struct {
	Backend BackendKind
	// From the last trial.
	Digest   Digest
	Trials   int
	FileSize int64
	// Accumulated over all trials. Equal to FileSize*Trials unless the file changed during the run.
	BytesRead int64
	Elapsed   time.Duration
	// Bytes per second, from FileSize*Trials over Elapsed.
	Throughput float64
}

func (r Result) HexDigest() string {
	return r.Digest.String()
}

func (r Result) MiBPerSecond() float64 {
	return r.Throughput / (1 << 20)
}

// Throughput from a known file size, computed the same way for every backend.
func throughput(fileSize int64, trials int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		// Coarse clocks can report zero for tiny files.
		elapsed = time.Nanosecond
	}
	return float64(fileSize) * float64(trials) / elapsed.Seconds()
}
