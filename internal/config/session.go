package config

import (
	"errors"
	"fmt"
)

const (
	// DefaultChunkSize is used when no chunk size is given.
	DefaultChunkSize int64 = 1000000

	// MaxChunkSize caps the single working buffer.
	MaxChunkSize int64 = 1 << 30

	// MaxPathLen bounds the destination path (PATH_MAX on Linux).
	MaxPathLen = 4096
)

// ErrInvalidConfig reports inputs that cannot form a session.
var ErrInvalidConfig = errors.New("invalid configuration")

// Inputs are the raw session values before validation.
// An EndOffset of zero means the copy is unbounded.
type Inputs struct {
	Input       string
	Output      string
	ChunkSize   int64
	StartOffset int64
	EndOffset   int64
}

// Session is a validated, immutable copy configuration.
type Session struct {
	input       string
	output      string
	chunkSize   int64
	startOffset int64
	endOffset   int64
}

// New validates in and returns the session it describes.
func New(in Inputs) (Session, error) {
	if in.ChunkSize <= 0 {
		return Session{}, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, in.ChunkSize)
	}
	if in.ChunkSize > MaxChunkSize {
		return Session{}, fmt.Errorf("%w: chunk size %d exceeds %d, try a smaller [chunk-size]", ErrInvalidConfig, in.ChunkSize, MaxChunkSize)
	}
	if len(in.Output) > MaxPathLen {
		return Session{}, fmt.Errorf("%w: output path is too long (%d > %d)", ErrInvalidConfig, len(in.Output), MaxPathLen)
	}
	if in.StartOffset < 0 || in.EndOffset < 0 {
		return Session{}, fmt.Errorf("%w: offsets must not be negative", ErrInvalidConfig)
	}
	return Session{
		input:       in.Input,
		output:      in.Output,
		chunkSize:   in.ChunkSize,
		startOffset: in.StartOffset,
		endOffset:   in.EndOffset,
	}, nil
}

func (s Session) Input() string      { return s.input }
func (s Session) Output() string     { return s.output }
func (s Session) ChunkSize() int64   { return s.chunkSize }
func (s Session) StartOffset() int64 { return s.startOffset }

// EndOffset returns the end bound and whether one was given.
func (s Session) EndOffset() (int64, bool) { return s.endOffset, s.endOffset > 0 }

// NoOp reports whether the start offset already reaches the end bound,
// in which case there is nothing to copy.
//
// The end bound is only consulted here; the copy loop runs to end of input.
func (s Session) NoOp() bool {
	return s.endOffset > 0 && s.startOffset >= s.endOffset
}

// Offset returns the absolute source offset of the given chunk index.
func (s Session) Offset(chunk int64) int64 {
	return chunk*s.chunkSize + s.startOffset
}
