package ui

import (
	"fmt"
	"io"
)

// quietPresenter drops progress narration. Read and write failures still
// reach errW so the operator knows which offset a prompt is about.
type quietPresenter struct {
	errW   io.Writer
	styled bool
}

func (p *quietPresenter) Emit(ev Event) {
	if p.errW == nil {
		return
	}
	switch ev.Type {
	case ReadFailed:
		fmt.Fprintln(p.errW, styleIf(p.styled, StyleError, readFailedLine(ev, false)))
	case WriteFailed:
		fmt.Fprintln(p.errW, styleIf(p.styled, StyleError, writeFailedLine(ev, false)))
	}
}

func (p *quietPresenter) Summary() string {
	return ""
}
