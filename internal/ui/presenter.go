package ui

import (
	"io"

	"github.com/bamsammich/salvage/internal/stats"
)

// Presenter narrates engine events as they happen.
type Presenter interface {
	// Emit handles one event synchronously.
	Emit(ev Event)
	// Summary returns the final summary line.
	Summary() string
}

// Config configures a Presenter.
type Config struct {
	Writer    io.Writer // narration
	ErrWriter io.Writer // errors
	Stats     *stats.Collector
	IsTTY     bool // ErrWriter is a terminal; enables styling
	Quiet     bool
	Verbose   bool
}

// NewPresenter creates the appropriate presenter based on configuration.
//
//nolint:ireturn // factory function returns interface by design
func NewPresenter(cfg Config) Presenter {
	if cfg.Quiet {
		return &quietPresenter{errW: cfg.ErrWriter, styled: cfg.IsTTY}
	}
	return &plainPresenter{
		w:       cfg.Writer,
		errW:    cfg.ErrWriter,
		stats:   cfg.Stats,
		styled:  cfg.IsTTY,
		verbose: cfg.Verbose,
	}
}
