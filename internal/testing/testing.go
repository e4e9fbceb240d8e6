package benchTesting

// Yields Chunks one per Read, then fails with Err.
type ErrReader struct {
	Chunks [][]byte
	Err    error
}

func (me *ErrReader) Read(b []byte) (n int, err error) {
	if len(me.Chunks) == 0 {
		return 0, me.Err
	}
	n = copy(b, me.Chunks[0])
	me.Chunks[0] = me.Chunks[0][n:]
	if len(me.Chunks[0]) == 0 {
		me.Chunks = me.Chunks[1:]
	}
	return
}
