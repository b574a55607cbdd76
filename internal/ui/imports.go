package ui

import "github.com/bamsammich/salvage/internal/event"

// Event is re-exported for convenience.
type Event = event.Event

// Re-export event types for convenience.
const (
	ChunkStarted = event.ChunkStarted
	ChunkRead    = event.ChunkRead
	ReadFailed   = event.ReadFailed
	Retrying     = event.Retrying
	ZeroFilled   = event.ZeroFilled
	WriteFailed  = event.WriteFailed
	Finished     = event.Finished
	NothingToDo  = event.NothingToDo
	Aborted      = event.Aborted
)
