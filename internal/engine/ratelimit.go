package engine

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

const maxThrottleBurst = 1 << 20

// NewBWLimiter returns a limiter admitting bytesPerSec bytes of source
// reads per second. Bursts never exceed one second of budget or 1 MiB.
func NewBWLimiter(bytesPerSec int64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(bytesPerSec), int(min(bytesPerSec, maxThrottleBurst)))
}

// throttledReader charges every successful read against a limiter.
// A single read asks for at most Burst bytes, which WaitN always accepts.
type throttledReader struct {
	ctx context.Context
	src io.Reader
	lim *rate.Limiter
}

func newThrottledReader(ctx context.Context, src io.Reader, lim *rate.Limiter) *throttledReader {
	return &throttledReader{ctx: ctx, src: src, lim: lim}
}

func (t *throttledReader) Read(p []byte) (int, error) {
	if b := t.lim.Burst(); b > 0 && len(p) > b {
		p = p[:b]
	}
	n, err := t.src.Read(p)
	if n == 0 {
		return n, err
	}
	if werr := t.lim.WaitN(t.ctx, n); werr != nil {
		return n, werr
	}
	return n, err
}
