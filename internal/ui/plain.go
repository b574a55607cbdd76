package ui

import (
	"fmt"
	"io"

	"github.com/bamsammich/salvage/internal/stats"
)

// plainPresenter narrates every chunk on w, one line per attempt, and
// reports failures on errW.
type plainPresenter struct {
	w       io.Writer
	errW    io.Writer
	stats   *stats.Collector
	styled  bool
	verbose bool
}

func (p *plainPresenter) Emit(ev Event) {
	switch ev.Type {
	case ChunkStarted:
		fmt.Fprintf(p.w, "trying to read %d bytes at %d... ", ev.Size, ev.Offset)
	case ChunkRead:
		fmt.Fprintln(p.w, BytesReadPhrase(ev.Read))
	case ReadFailed:
		fmt.Fprintln(p.errW, styleIf(p.styled, StyleError, readFailedLine(ev, p.verbose)))
	case Retrying:
		fmt.Fprintln(p.w, "retrying...")
	case ZeroFilled:
		if p.verbose {
			line := fmt.Sprintf("filled %d bytes at %d with zeros", ev.Read, ev.Offset)
			fmt.Fprintln(p.w, styleIf(p.styled, StyleMuted, line))
		}
	case WriteFailed:
		fmt.Fprintln(p.errW, styleIf(p.styled, StyleError, writeFailedLine(ev, p.verbose)))
	case Finished:
		fmt.Fprintln(p.w, styleIf(p.styled, StyleDone, "finished"))
	case NothingToDo:
		fmt.Fprintln(p.w, "nothing to do")
	case Aborted:
		// The caller reports the cause.
	}
}

func styleIf(styled bool, kind StyleKind, s string) string {
	if !styled {
		return s
	}
	return Render(kind, s)
}

func readFailedLine(ev Event, verbose bool) string {
	msg := fmt.Sprintf("error when reading from byte %d", ev.Offset)
	if verbose && ev.Error != nil {
		msg += fmt.Sprintf(" (%v)", ev.Error)
	}
	return msg
}

func writeFailedLine(ev Event, verbose bool) string {
	if verbose && ev.Error != nil {
		return ev.Error.Error()
	}
	return "write error"
}

func (p *plainPresenter) Summary() string {
	if p.stats == nil {
		return ""
	}
	return CompletionSummary(p.stats.Snapshot())
}

// BytesReadPhrase describes a read count the way the narration does.
func BytesReadPhrase(n int64) string {
	switch n {
	case 0:
		return "no bytes were read"
	case 1:
		return "1 byte was read"
	default:
		return fmt.Sprintf("%d bytes were read", n)
	}
}
