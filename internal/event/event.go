package event

import "time"

// Type identifies the kind of event.
type Type int

const (
	ChunkStarted Type = iota + 1
	ChunkRead
	ReadFailed
	Retrying
	ZeroFilled
	WriteFailed
	Finished
	NothingToDo
	Aborted
)

var typeNames = [...]string{
	ChunkStarted: "ChunkStarted",
	ChunkRead:    "ChunkRead",
	ReadFailed:   "ReadFailed",
	Retrying:     "Retrying",
	ZeroFilled:   "ZeroFilled",
	WriteFailed:  "WriteFailed",
	Finished:     "Finished",
	NothingToDo:  "NothingToDo",
	Aborted:      "Aborted",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Event is a single narration step from the copy engine.
type Event struct {
	Type      Type
	Timestamp time.Time
	Chunk     int64 // cursor index
	Offset    int64 // absolute source offset of Chunk
	Size      int64 // requested bytes (chunk size)
	Read      int64 // bytes actually read or written
	Error     error
	Media     bool // Error looks like a device-level read failure
}

// Sink receives events synchronously, in the order they happen.
type Sink interface {
	Emit(ev Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

type tee []Sink

func (t tee) Emit(ev Event) {
	for _, s := range t {
		s.Emit(ev)
	}
}

// Tee fans every event out to each of sinks in order.
//
//nolint:ireturn // combinator returns interface by design
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}
