package blake2bench

import (
	"errors"
)

// Called with the bytes hashed so far in the current trial.
type TrialProgress func(n int64)

// RunTrial feeds src through b until src is exhausted and returns the number of bytes hashed. b
// isn't finalized. Errors from src are returned as is: a short count would invalidate the
// measurement.
func RunTrial(src ChunkSource, b Backend, buf []byte, progress TrialProgress) (total int64, err error) {
	if len(buf) == 0 {
		return 0, errors.New("trial buffer is empty")
	}
	for {
		var n int
		n, err = src.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			return
		}
		b.Update(buf[:n])
		total += int64(n)
		if progress != nil {
			progress(total)
		}
	}
}
