package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bamsammich/salvage/internal/stats"
)

func TestCompletionSummaryClean(t *testing.T) {
	s := CompletionSummary(stats.Snapshot{
		ChunksCopied: 1500,
		BytesWritten: 1500 * 1024,
		Elapsed:      3 * time.Second,
	})
	assert.Equal(t, "done ✓  chunks 1,500  size 1.5 MiB  avg 500 KB/s  time 3s  retries 0", s)
}

func TestCompletionSummaryZeroFilled(t *testing.T) {
	s := CompletionSummary(stats.Snapshot{
		ChunksCopied:     10,
		ChunksZeroFilled: 2,
		BytesZeroFilled:  2048,
		BytesWritten:     12 * 1024,
		Retries:          4,
		Elapsed:          time.Second,
	})
	assert.Contains(t, s, "done ✗")
	assert.Contains(t, s, "chunks 12")
	assert.Contains(t, s, "zeroed 2 (2.0 KiB)")
	assert.Contains(t, s, "retries 4")
}
