// Package engine implements the chunked, error-tolerant copy loop.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/bamsammich/salvage/internal/config"
	"github.com/bamsammich/salvage/internal/event"
	"github.com/bamsammich/salvage/internal/platform"
	"github.com/bamsammich/salvage/internal/recovery"
	"github.com/bamsammich/salvage/internal/stats"
)

var (
	ErrSourceOpen = errors.New("can not open the input file")
	ErrDestOpen   = errors.New("can not create an output file")
	ErrWrite      = errors.New("write error")
)

// Source is a readable, seekable input that is reopened after every
// read error.
type Source interface {
	io.Reader
	io.Seeker
	io.Closer
}

// OpenFunc opens the source at path.
type OpenFunc func(path string) (Source, error)

// CreateFunc creates or truncates the destination at path.
type CreateFunc func(path string) (io.WriteCloser, error)

// Config describes a recovery copy.
type Config struct {
	Session config.Session
	Policy  *recovery.Policy
	Events  event.Sink
	Stats   *stats.Collector
	Limiter *rate.Limiter // optional read throttle

	// Open and Create default to the local filesystem.
	Open   OpenFunc
	Create CreateFunc
}

// Result is the outcome of a recovery copy.
type Result struct {
	Stats  stats.Snapshot
	Chunks int64 // chunks resolved (copied or zero-filled)
	NoOp   bool

	// TrailingWriteErr is set when the final partial chunk or the
	// closing of the destination failed. The run still succeeds.
	TrailingWriteErr error
	Err              error
}

func openLocal(path string) (Source, error) {
	return platform.OpenSource(path)
}

func createLocal(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Run copies the session's source to its destination chunk by chunk,
// blocking until end of input or a fatal error.
func Run(ctx context.Context, cfg Config) Result {
	if cfg.Session.ChunkSize() <= 0 {
		return Result{Err: fmt.Errorf("%w: empty session", config.ErrInvalidConfig)}
	}
	if cfg.Events == nil {
		cfg.Events = event.Discard
	}
	if cfg.Stats == nil {
		cfg.Stats = stats.NewCollector()
	}
	if cfg.Policy == nil {
		cfg.Policy = recovery.NewPolicy(nil, recovery.AskEachTime)
	}
	if cfg.Open == nil {
		cfg.Open = openLocal
	}
	if cfg.Create == nil {
		cfg.Create = createLocal
	}

	if cfg.Session.NoOp() {
		cfg.Events.Emit(event.Event{Type: event.NothingToDo, Timestamp: time.Now()})
		return Result{NoOp: true, Stats: cfg.Stats.Snapshot()}
	}

	c := &copier{
		cfg: cfg,
		buf: make([]byte, cfg.Session.ChunkSize()),
	}
	err := c.run(ctx)

	return Result{
		Stats:            cfg.Stats.Snapshot(),
		Chunks:           c.cursor,
		TrailingWriteErr: c.trailingErr,
		Err:              err,
	}
}
