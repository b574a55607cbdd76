package engine_test

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/bamsammich/salvage/internal/config"
	"github.com/bamsammich/salvage/internal/engine"
	"github.com/bamsammich/salvage/internal/event"
	"github.com/bamsammich/salvage/internal/recovery"
)

// forever marks a bad byte that never becomes readable.
const forever = -1

// flakyMedium simulates a device with unreadable bytes. A read that
// covers a bad byte returns the bytes before it and EIO.
type flakyMedium struct {
	mu    sync.Mutex
	data  []byte
	bad   map[int64]int // byte offset -> failures left (forever = never heals)
	seeks []int64       // offset of every post-open seek
	opens int
	open  int // currently open handles

	emptyReads bool // return (0, nil) instead of data
}

func newFlakyMedium(data []byte) *flakyMedium {
	return &flakyMedium{data: data, bad: map[int64]int{}}
}

func (m *flakyMedium) Open(string) (engine.Source, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opens++
	m.open++
	return &flakyHandle{m: m}, nil
}

type flakyHandle struct {
	m      *flakyMedium
	pos    int64
	closed bool
}

func (h *flakyHandle) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekStart {
		return 0, errors.New("unsupported whence")
	}
	h.m.mu.Lock()
	h.m.seeks = append(h.m.seeks, offset)
	h.m.mu.Unlock()
	h.pos = offset
	return offset, nil
}

func (h *flakyHandle) Read(p []byte) (int, error) {
	m := h.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if h.closed {
		return 0, errors.New("read on closed handle")
	}
	if m.emptyReads {
		return 0, nil
	}
	if h.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}

	end := min(h.pos+int64(len(p)), int64(len(m.data)))
	for off := h.pos; off < end; off++ {
		left, ok := m.bad[off]
		if !ok || left == 0 {
			continue
		}
		if left > 0 {
			m.bad[off] = left - 1
		}
		n := copy(p, m.data[h.pos:off])
		h.pos += int64(n)
		return n, unix.EIO
	}

	n := copy(p, m.data[h.pos:end])
	h.pos += int64(n)
	return n, nil
}

func (h *flakyHandle) Close() error {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	if !h.closed {
		h.closed = true
		h.m.open--
	}
	return nil
}

// memDest records what the engine writes. failOnWrite makes the n-th
// write (1-based) fail.
type memDest struct {
	bytes.Buffer
	writes      int
	failOnWrite int
	short       bool
	closed      bool
	creates     int
}

func (d *memDest) Create(string) (io.WriteCloser, error) {
	d.creates++
	return d, nil
}

func (d *memDest) Write(p []byte) (int, error) {
	d.writes++
	if d.failOnWrite > 0 && d.writes == d.failOnWrite {
		if d.short && len(p) > 1 {
			return d.Buffer.Write(p[:len(p)/2])
		}
		return 0, unix.ENOSPC
	}
	return d.Buffer.Write(p)
}

func (d *memDest) Close() error {
	d.closed = true
	return nil
}

// scriptedAsker replays answers and records every offset asked about.
type scriptedAsker struct {
	answers []recovery.Answer
	asked   []int64
}

func (s *scriptedAsker) Ask(offset int64) (recovery.Answer, error) {
	s.asked = append(s.asked, offset)
	if len(s.answers) == 0 {
		return recovery.AnswerRetry, recovery.ErrPromptInput
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func answers(a ...recovery.Answer) *scriptedAsker {
	return &scriptedAsker{answers: a}
}

// eventLog collects event types in order.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) Emit(ev event.Event) { l.events = append(l.events, ev) }

func (l *eventLog) types() []event.Type {
	out := make([]event.Type, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Type
	}
	return out
}

func (l *eventLog) count(typ event.Type) int {
	var n int
	for _, ev := range l.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func newSession(t *testing.T, chunk, start, end int64) config.Session {
	t.Helper()
	s, err := config.New(config.Inputs{
		Input:       "/dev/flaky",
		Output:      "recovered.img",
		ChunkSize:   chunk,
		StartOffset: start,
		EndOffset:   end,
	})
	require.NoError(t, err)
	return s
}

// sequence returns n bytes of a repeating, position-dependent pattern.
func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + i%26)
	}
	return b
}
