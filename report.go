package blake2bench

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
)

// TextReporter is an Observer that writes human readable results. Writes are serialized so
// concurrent backends don't interleave.
type TextReporter struct {
	Out io.Writer
	// Progress is redrawn in place here. If nil, progress isn't shown.
	ProgressOut io.Writer
	// Print each backend's title with its results, rather than when it starts. Progress is not shown
	// either, since redrawing lines for several backends at once is unreadable.
	Deferred bool

	mu   sync.Mutex
	bars map[BackendKind]*progressLine
}

type progressLine struct {
	total   int64
	percent int64
}

func backendTitle(kind BackendKind) string {
	title := kind.Title()
	if kind == BackendSIMD {
		if fs := SIMDFeatures(); len(fs) != 0 {
			title += " [" + strings.Join(fs, " ") + "]"
		}
	}
	return title
}

func (me *TextReporter) Started(kind BackendKind, totalBytes int64) {
	me.mu.Lock()
	defer me.mu.Unlock()
	if me.Deferred {
		return
	}
	fmt.Fprintln(me.Out, backendTitle(kind))
	if me.ProgressOut == nil {
		return
	}
	if me.bars == nil {
		me.bars = make(map[BackendKind]*progressLine)
	}
	pl := &progressLine{total: totalBytes, percent: -1}
	me.bars[kind] = pl
	me.drawProgress(kind, pl, 0)
}

func (me *TextReporter) Progressed(kind BackendKind, doneBytes int64) {
	me.mu.Lock()
	defer me.mu.Unlock()
	pl, ok := me.bars[kind]
	if !ok {
		return
	}
	me.drawProgress(kind, pl, doneBytes)
}

// Only redraws when the whole percentage changes, to keep the hot path cheap.
func (me *TextReporter) drawProgress(kind BackendKind, pl *progressLine, done int64) {
	percent := int64(100)
	if pl.total > 0 {
		percent = done * 100 / pl.total
	}
	if percent == pl.percent {
		return
	}
	pl.percent = percent
	fmt.Fprintf(
		me.ProgressOut,
		"\r%s %3d%% • %s / %s",
		kind,
		percent,
		humanize.IBytes(uint64(done)),
		humanize.IBytes(uint64(pl.total)),
	)
}

func (me *TextReporter) Finished(r Result) {
	me.mu.Lock()
	defer me.mu.Unlock()
	if _, ok := me.bars[r.Backend]; ok {
		fmt.Fprintln(me.ProgressOut)
		delete(me.bars, r.Backend)
	}
	if me.Deferred {
		fmt.Fprintln(me.Out, backendTitle(r.Backend))
	}
	WriteResult(me.Out, r)
}

func WriteResult(w io.Writer, r Result) {
	fmt.Fprintf(w, "\n** Result     => %s\n", r.HexDigest())
	fmt.Fprintf(w, "** Throughput => %.2f MB/s\n", r.MiBPerSecond())
}
