package blake2bench

import (
	"os"
	"path/filepath"
	"testing"
)

// Writes data to a new file in the test's temp dir and returns its path.
func TestingWriteFile(tb testing.TB, name string, data []byte) string {
	path := filepath.Join(tb.TempDir(), name)
	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		tb.Fatalf("writing test file: %v", err)
	}
	return path
}

// Returns n bytes repeating 0..250. 251 is prime, so the pattern never lines up with block or
// buffer sizes.
func TestingPattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func TestingPatternFile(tb testing.TB, n int) (path string, data []byte) {
	data = TestingPattern(n)
	path = TestingWriteFile(tb, "pattern", data)
	return
}

func TestingDefaultRunOpts(tb testing.TB, path string) (ret RunOpts) {
	ret.Path = path
	ret.Trials = 2
	return
}
