package blake2bench

import (
	"errors"
	"io"
	"os"
)

// ChunkSource fills buf and returns how many bytes are valid. It returns 0 only at end of stream.
type ChunkSource interface {
	Read(buf []byte) (int, error)
}

// ChunkedReader yields a file's contents in caller-sized chunks without loading the whole file.
type ChunkedReader struct {
	f    *os.File
	path string
	off  int64
	eof  bool
}

func NewChunkedReader(path string) (*ChunkedReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	return &ChunkedReader{f: f, path: path}, nil
}

// Read returns 0 with a nil error at end of file, and keeps doing so if called again. io.EOF is
// never returned.
func (me *ChunkedReader) Read(buf []byte) (n int, err error) {
	if me.eof || len(buf) == 0 {
		return
	}
	if me.f == nil {
		return 0, &ReadError{Path: me.path, Offset: me.off, Err: os.ErrClosed}
	}
	for n == 0 {
		n, err = me.f.Read(buf)
		me.off += int64(n)
		if errors.Is(err, io.EOF) {
			me.eof = true
			return n, nil
		}
		if err != nil {
			return n, &ReadError{Path: me.path, Offset: me.off, Err: err}
		}
	}
	return
}

func (me *ChunkedReader) Close() (err error) {
	if me.f != nil {
		err = me.f.Close()
		me.f = nil
	}
	return
}
