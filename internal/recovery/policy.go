// Package recovery decides what to do with a chunk that could not be read.
package recovery

import (
	"errors"
	"fmt"
)

// ErrPromptInput is returned when the operator's answer cannot be read.
var ErrPromptInput = errors.New("can not read user input")

// Mode is the policy's standing behavior for read errors.
type Mode int

const (
	AskEachTime Mode = iota
	AlwaysZeroFill
)

func (m Mode) String() string {
	switch m {
	case AskEachTime:
		return "ask"
	case AlwaysZeroFill:
		return "always-zero-fill"
	default:
		return "unknown"
	}
}

// Decision is how the engine resolves a failed chunk.
type Decision int

const (
	RetryChunk Decision = iota
	ZeroFillChunk
)

func (d Decision) String() string {
	switch d {
	case RetryChunk:
		return "retry"
	case ZeroFillChunk:
		return "zero-fill"
	default:
		return "unknown"
	}
}

// Asker obtains an operator answer for a failed read at offset.
type Asker interface {
	Ask(offset int64) (Answer, error)
}

// Policy turns read errors into decisions. Once the operator picks
// "always zero-fill" the policy stops asking for the rest of the run.
type Policy struct {
	asker Asker
	mode  Mode
}

// NewPolicy returns a policy starting in mode.
func NewPolicy(asker Asker, mode Mode) *Policy {
	return &Policy{asker: asker, mode: mode}
}

// Mode returns the current mode.
func (p *Policy) Mode() Mode { return p.mode }

// Sticky reports whether errors are resolved without asking.
func (p *Policy) Sticky() bool { return p.mode == AlwaysZeroFill }

// Decide resolves a read error at offset.
func (p *Policy) Decide(offset int64) (Decision, error) {
	if p.mode == AlwaysZeroFill {
		return ZeroFillChunk, nil
	}
	if p.asker == nil {
		return RetryChunk, fmt.Errorf("%w: no prompt available", ErrPromptInput)
	}

	answer, err := p.asker.Ask(offset)
	if err != nil {
		return RetryChunk, err
	}

	switch answer {
	case AnswerZeroAlways:
		p.mode = AlwaysZeroFill
		return ZeroFillChunk, nil
	case AnswerZeroOnce:
		return ZeroFillChunk, nil
	default:
		return RetryChunk, nil
	}
}
