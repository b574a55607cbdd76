package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Collector tracks recovery statistics using atomic counters.
type Collector struct {
	chunksCopied     atomic.Int64
	chunksZeroFilled atomic.Int64
	readErrors       atomic.Int64
	retries          atomic.Int64
	prompts          atomic.Int64
	bytesRead        atomic.Int64
	bytesWritten     atomic.Int64
	bytesZeroFilled  atomic.Int64
	startTime        time.Time
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	ChunksCopied     int64
	ChunksZeroFilled int64
	ReadErrors       int64
	Retries          int64
	Prompts          int64
	BytesRead        int64
	BytesWritten     int64
	BytesZeroFilled  int64
	Elapsed          time.Duration
}

func (c *Collector) AddChunksCopied(n int64)     { c.chunksCopied.Add(n) }
func (c *Collector) AddChunksZeroFilled(n int64) { c.chunksZeroFilled.Add(n) }
func (c *Collector) AddReadErrors(n int64)       { c.readErrors.Add(n) }
func (c *Collector) AddRetries(n int64)          { c.retries.Add(n) }
func (c *Collector) AddPrompts(n int64)          { c.prompts.Add(n) }
func (c *Collector) AddBytesRead(n int64)        { c.bytesRead.Add(n) }
func (c *Collector) AddBytesWritten(n int64)     { c.bytesWritten.Add(n) }
func (c *Collector) AddBytesZeroFilled(n int64)  { c.bytesZeroFilled.Add(n) }

// Snapshot returns a point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		ChunksCopied:     c.chunksCopied.Load(),
		ChunksZeroFilled: c.chunksZeroFilled.Load(),
		ReadErrors:       c.readErrors.Load(),
		Retries:          c.retries.Load(),
		Prompts:          c.prompts.Load(),
		BytesRead:        c.bytesRead.Load(),
		BytesWritten:     c.bytesWritten.Load(),
		BytesZeroFilled:  c.bytesZeroFilled.Load(),
		Elapsed:          c.Elapsed(),
	}
}

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	if c.startTime.IsZero() {
		return 0
	}
	return time.Since(c.startTime)
}

// Rate returns the average bytes written per second since start.
func (s Snapshot) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.BytesWritten) / s.Elapsed.Seconds()
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"copied=%d zeroed=%d read_errors=%d retries=%d prompts=%d read=%d written=%d",
		s.ChunksCopied, s.ChunksZeroFilled, s.ReadErrors, s.Retries, s.Prompts,
		s.BytesRead, s.BytesWritten,
	)
}

// FormatBytes returns a human-readable byte count.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
