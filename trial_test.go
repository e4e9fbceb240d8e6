package blake2bench_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	xcrypto "golang.org/x/crypto/blake2b"

	"github.com/anacrolix/blake2bench"
	benchTesting "github.com/anacrolix/blake2bench/internal/testing"
)

type recordingBackend struct {
	data      []byte
	finalized bool
}

func (me *recordingBackend) Update(b []byte) {
	me.data = append(me.data, b...)
}

func (me *recordingBackend) Finalize(*blake2bench.Digest) {
	me.finalized = true
}

func trialDigest(c *qt.C, path string, kind blake2bench.BackendKind, bufSize int) (d blake2bench.Digest, n int64) {
	r, err := blake2bench.NewChunkedReader(path)
	c.Assert(err, qt.IsNil)
	defer r.Close()
	b := kind.New()
	n, err = blake2bench.RunTrial(r, b, make([]byte, bufSize), nil)
	c.Assert(err, qt.IsNil)
	b.Finalize(&d)
	return
}

func TestTrialBufferSizesAgree(t *testing.T) {
	c := qt.New(t)
	path, data := blake2bench.TestingPatternFile(t, 10_000)
	want := blake2bench.Digest(xcrypto.Sum256(data))
	for _, kind := range blake2bench.AllBackends {
		for _, bufSize := range []int{1, 17, 4096} {
			d, n := trialDigest(c, path, kind, bufSize)
			c.Check(n, qt.Equals, int64(len(data)))
			c.Check(d, qt.Equals, want, qt.Commentf("%v, buffer size %v", kind, bufSize))
		}
	}
}

func TestTrialEmptyFile(t *testing.T) {
	c := qt.New(t)
	path := blake2bench.TestingWriteFile(t, "empty", nil)
	for _, kind := range blake2bench.AllBackends {
		d, n := trialDigest(c, path, kind, 4096)
		c.Check(n, qt.Equals, int64(0))
		c.Check(d.String(), qt.Equals, emptyDigest)
	}
}

func TestTrialAbc(t *testing.T) {
	c := qt.New(t)
	path := blake2bench.TestingWriteFile(t, "abc", []byte("abc"))
	for _, kind := range blake2bench.AllBackends {
		d, _ := trialDigest(c, path, kind, 4096)
		c.Check(d.String(), qt.Equals, abcDigest)
	}
}

func TestTrialDeterministic(t *testing.T) {
	c := qt.New(t)
	path, _ := blake2bench.TestingPatternFile(t, 5000)
	for _, kind := range blake2bench.AllBackends {
		d1, _ := trialDigest(c, path, kind, 4096)
		d2, _ := trialDigest(c, path, kind, 4096)
		c.Check(d1, qt.Equals, d2)
	}
}

// A short final read must only pass the valid bytes on.
func TestTrialNoStaleBytes(t *testing.T) {
	c := qt.New(t)
	path, data := blake2bench.TestingPatternFile(t, 10)
	r, err := blake2bench.NewChunkedReader(path)
	c.Assert(err, qt.IsNil)
	defer r.Close()
	var b recordingBackend
	var progress []int64
	n, err := blake2bench.RunTrial(r, &b, make([]byte, 4), func(n int64) {
		progress = append(progress, n)
	})
	c.Assert(err, qt.IsNil)
	c.Check(n, qt.Equals, int64(10))
	c.Check(b.data, qt.DeepEquals, data)
	c.Check(b.finalized, qt.IsFalse)
	c.Check(progress, qt.DeepEquals, []int64{4, 8, 10})
}

func TestTrialReadErrorPropagates(t *testing.T) {
	c := qt.New(t)
	readErr := errors.New("disk on fire")
	src := &benchTesting.ErrReader{
		Chunks: [][]byte{[]byte("hello"), []byte("world")},
		Err:    readErr,
	}
	var b recordingBackend
	n, err := blake2bench.RunTrial(src, &b, make([]byte, 8), nil)
	c.Check(err, qt.Equals, readErr)
	c.Check(n, qt.Equals, int64(10))
	c.Check(string(b.data), qt.Equals, "helloworld")
}

func TestTrialEmptyBuffer(t *testing.T) {
	c := qt.New(t)
	var b recordingBackend
	_, err := blake2bench.RunTrial(&benchTesting.ErrReader{}, &b, nil, nil)
	c.Check(err, qt.ErrorMatches, "trial buffer is empty")
}
