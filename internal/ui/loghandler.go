package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bamsammich/salvage/internal/event"
)

// MultiHandler fans each record out to every wrapped handler that
// accepts its level.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler returns a handler writing to all of handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: hs}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: hs}
}

// NewLogSink returns a sink that records every event on logger as a
// "salvage.event" record. Failures log at warn, everything else at debug.
//
//nolint:ireturn // returns the event.Sink interface by design
func NewLogSink(logger *slog.Logger) event.Sink {
	return event.SinkFunc(func(ev event.Event) {
		attrs := []slog.Attr{
			slog.String("type", ev.Type.String()),
			slog.Int64("chunk", ev.Chunk),
			slog.Int64("offset", ev.Offset),
			slog.Int64("size", ev.Size),
			slog.Int64("bytes", ev.Read),
		}
		level := slog.LevelDebug
		if ev.Error != nil {
			attrs = append(attrs,
				slog.String("error", ev.Error.Error()),
				slog.Bool("media", ev.Media),
			)
			level = slog.LevelWarn
		}
		logger.LogAttrs(context.Background(), level, "salvage.event", attrs...)
	})
}
