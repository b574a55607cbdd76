package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bamsammich/salvage/internal/event"
)

func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  event.Type
		want string
	}{
		{event.ChunkStarted, "ChunkStarted"},
		{event.ChunkRead, "ChunkRead"},
		{event.ReadFailed, "ReadFailed"},
		{event.Retrying, "Retrying"},
		{event.ZeroFilled, "ZeroFilled"},
		{event.WriteFailed, "WriteFailed"},
		{event.Finished, "Finished"},
		{event.NothingToDo, "NothingToDo"},
		{event.Aborted, "Aborted"},
		{event.Type(0), "Unknown"},
		{event.Type(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()

	var a, b []event.Type
	sink := event.Tee(
		event.SinkFunc(func(ev event.Event) { a = append(a, ev.Type) }),
		event.Discard,
		event.SinkFunc(func(ev event.Event) { b = append(b, ev.Type) }),
	)

	sink.Emit(event.Event{Type: event.ChunkStarted})
	sink.Emit(event.Event{Type: event.Finished})

	assert.Equal(t, []event.Type{event.ChunkStarted, event.Finished}, a)
	assert.Equal(t, a, b)
}
