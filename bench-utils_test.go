package blake2bench_test

import (
	"github.com/anacrolix/blake2bench"
)

type recordingObserver struct {
	started    []blake2bench.BackendKind
	finished   []blake2bench.Result
	onProgress func(done int64)
}

func (me *recordingObserver) Started(kind blake2bench.BackendKind, _ int64) {
	me.started = append(me.started, kind)
}

func (me *recordingObserver) Progressed(_ blake2bench.BackendKind, done int64) {
	if me.onProgress != nil {
		me.onProgress(done)
	}
}

func (me *recordingObserver) Finished(r blake2bench.Result) {
	me.finished = append(me.finished, r)
}
