package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bamsammich/salvage/internal/event"
	"github.com/bamsammich/salvage/internal/platform"
	"github.com/bamsammich/salvage/internal/recovery"
)

// maxEmptyReads bounds consecutive (0, nil) reads before a chunk is
// treated as unreadable.
const maxEmptyReads = 100

type outcome int

const (
	fullChunk outcome = iota
	endOfInput
	readFailed
)

// copier owns the handles, the working buffer and the cursor for one run.
type copier struct {
	cfg Config

	src    Source    // nil while closed
	reader io.Reader // src, possibly throttled
	dst    io.WriteCloser

	buf         []byte
	cursor      int64
	trailingErr error
}

func (c *copier) run(ctx context.Context) error {
	err := c.loop(ctx)
	if closeErr := c.release(); closeErr != nil && err == nil {
		c.emit(event.Event{Type: event.WriteFailed, Error: closeErr})
		if c.trailingErr == nil {
			c.trailingErr = closeErr
		}
	}
	return err
}

func (c *copier) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			c.emit(event.Event{Type: event.Aborted, Error: err})
			return err
		}

		seekErr, err := c.ensureSource(ctx)
		if err != nil {
			return err
		}
		if err := c.ensureDest(); err != nil {
			return err
		}

		size := int64(len(c.buf))
		c.emit(event.Event{Type: event.ChunkStarted, Size: size})

		n, oc, readErr := 0, readFailed, seekErr
		if seekErr == nil {
			n, oc, readErr = c.readChunk()
		}
		if err := ctx.Err(); err != nil {
			c.emit(event.Event{Type: event.Aborted, Error: err})
			return err
		}
		c.emit(event.Event{Type: event.ChunkRead, Size: size, Read: int64(n)})

		switch oc {
		case fullChunk:
			c.cfg.Stats.AddBytesRead(int64(n))
			if err := c.write(c.buf); err != nil {
				return err
			}
			c.cfg.Stats.AddChunksCopied(1)
			c.cursor++

		case endOfInput:
			c.cfg.Stats.AddBytesRead(int64(n))
			if n > 0 {
				if err := c.write(c.buf[:n]); err != nil {
					c.trailingErr = err
				}
			}
			c.emit(event.Event{Type: event.Finished, Read: int64(n)})
			return nil

		case readFailed:
			if err := c.recover(readErr); err != nil {
				return err
			}
		}
	}
}

// ensureSource opens the source if it is closed and seeks it to the
// cursor's offset. A failed seek is returned separately: it is handled
// like a failed read, not as a fatal open error.
func (c *copier) ensureSource(ctx context.Context) (seekErr, err error) {
	if c.src != nil {
		return nil, nil
	}

	path := c.cfg.Session.Input()
	src, err := c.cfg.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSourceOpen, path, err)
	}
	c.src = src
	c.reader = src
	if c.cfg.Limiter != nil {
		c.reader = newThrottledReader(ctx, src, c.cfg.Limiter)
	}

	offset := c.offset()
	if _, err := src.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to %d: %w", offset, err), nil
	}
	return nil, nil
}

func (c *copier) ensureDest() error {
	if c.dst != nil {
		return nil
	}
	path := c.cfg.Session.Output()
	dst, err := c.cfg.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrDestOpen, path, err)
	}
	c.dst = dst
	return nil
}

// readChunk fills the working buffer and classifies the result.
func (c *copier) readChunk() (int, outcome, error) {
	n, err := readFull(c.reader, c.buf)
	switch {
	case n == len(c.buf):
		return n, fullChunk, nil
	case errors.Is(err, io.EOF):
		return n, endOfInput, nil
	default:
		return n, readFailed, err
	}
}

// readFull is io.ReadFull without the ErrUnexpectedEOF rewrite: a short
// read that hits end of input reports io.EOF.
func readFull(r io.Reader, buf []byte) (int, error) {
	var n, empty int
	for n < len(buf) {
		nr, err := r.Read(buf[n:])
		n += nr
		if err != nil {
			return n, err
		}
		if nr > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxEmptyReads {
			return n, io.ErrNoProgress
		}
	}
	return n, nil
}

// recover closes the source and applies the recovery decision for the
// chunk under the cursor.
func (c *copier) recover(readErr error) error {
	c.closeSource()
	c.cfg.Stats.AddReadErrors(1)
	c.emit(event.Event{
		Type:  event.ReadFailed,
		Error: readErr,
		Media: platform.IsMediaError(readErr),
	})

	if !c.cfg.Policy.Sticky() {
		c.cfg.Stats.AddPrompts(1)
	}
	decision, err := c.cfg.Policy.Decide(c.offset())
	if err != nil {
		c.emit(event.Event{Type: event.Aborted, Error: err})
		return err
	}

	switch decision {
	case recovery.ZeroFillChunk:
		clear(c.buf)
		if err := c.write(c.buf); err != nil {
			return err
		}
		c.cfg.Stats.AddChunksZeroFilled(1)
		c.cfg.Stats.AddBytesZeroFilled(int64(len(c.buf)))
		c.emit(event.Event{Type: event.ZeroFilled, Read: int64(len(c.buf))})
		c.cursor++
	default:
		c.cfg.Stats.AddRetries(1)
		c.emit(event.Event{Type: event.Retrying})
	}
	return nil
}

// write writes p in full to the destination.
func (c *copier) write(p []byte) error {
	n, err := c.dst.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	if n > 0 {
		c.cfg.Stats.AddBytesWritten(int64(n))
	}
	if err != nil {
		err = fmt.Errorf("%w at byte %d: %w", ErrWrite, c.offset(), err)
		c.emit(event.Event{Type: event.WriteFailed, Read: int64(n), Error: err})
		return err
	}
	return nil
}

func (c *copier) closeSource() {
	if c.src == nil {
		return
	}
	_ = c.src.Close() //nolint:errcheck // read-only handle, reopened on the next cycle
	c.src = nil
	c.reader = nil
}

// release closes every open handle and returns the destination's close error.
func (c *copier) release() error {
	c.closeSource()
	if c.dst == nil {
		return nil
	}
	err := c.dst.Close()
	c.dst = nil
	return err
}

func (c *copier) offset() int64 {
	return c.cfg.Session.Offset(c.cursor)
}

func (c *copier) emit(ev event.Event) {
	ev.Timestamp = time.Now()
	ev.Chunk = c.cursor
	ev.Offset = c.offset()
	if ev.Size == 0 {
		ev.Size = int64(len(c.buf))
	}
	c.cfg.Events.Emit(ev)
}
