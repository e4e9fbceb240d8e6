package blake2bench_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/anacrolix/blake2bench"
)

func BenchmarkBackendUpdate(b *testing.B) {
	const bufSize = blake2bench.DefaultBufferSize
	buf := blake2bench.TestingPattern(bufSize)
	for _, kind := range blake2bench.AllBackends {
		b.Run(kind.String(), func(b *testing.B) {
			h := kind.New()
			b.SetBytes(bufSize)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h.Update(buf)
			}
		})
	}
}

// Whole file trials through the harness, to compare against BenchmarkBackendUpdate for the
// overhead of reading.
func BenchmarkBench(b *testing.B) {
	const fileSize = 1 << 20
	path, _ := blake2bench.TestingPatternFile(b, fileSize)
	for _, kind := range blake2bench.AllBackends {
		b.Run(kind.String(), func(b *testing.B) {
			c := qt.New(b)
			opts := blake2bench.RunOpts{
				Path:   path,
				Trials: b.N,
			}
			b.SetBytes(fileSize)
			b.ResetTimer()
			r, err := blake2bench.Bench(opts, kind, nil)
			b.StopTimer()
			c.Assert(err, qt.IsNil)
			b.ReportMetric(r.MiBPerSecond(), "MiB/s")
		})
	}
}
