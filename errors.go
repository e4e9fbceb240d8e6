package blake2bench

import (
	"fmt"
)

// Returned when the target can't be probed or opened for reading. Unwraps to the os error, so
// errors.Is(err, fs.ErrNotExist) works for missing files.
type FileOpenError struct {
	Path string
	Err  error
}

func (me *FileOpenError) Error() string {
	return fmt.Sprintf("opening %q: %v", me.Path, me.Err)
}

func (me *FileOpenError) Unwrap() error {
	return me.Err
}

// A read failed partway through a trial. The measurement is invalid and the trial's work is
// discarded.
type ReadError struct {
	Path   string
	Offset int64
	Err    error
}

func (me *ReadError) Error() string {
	return fmt.Sprintf("reading %q at offset %v: %v", me.Path, me.Offset, me.Err)
}

func (me *ReadError) Unwrap() error {
	return me.Err
}
