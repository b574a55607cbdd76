package ui

import (
	"fmt"

	"github.com/bamsammich/salvage/internal/stats"
)

// CompletionSummary builds a final summary line from a snapshot.
// Format: done ✓  chunks 1,024  size 976.6 MiB  avg 41.2 MB/s  time 23s  zeroed 2  retries 5
func CompletionSummary(snap stats.Snapshot) string {
	icon := "✓"
	if snap.ChunksZeroFilled > 0 {
		icon = "✗"
	}

	base := fmt.Sprintf("done %s  chunks %s  size %s  avg %s  time %s",
		icon,
		FormatCount(snap.ChunksCopied+snap.ChunksZeroFilled),
		FormatBytes(snap.BytesWritten),
		FormatRate(snap.Rate()),
		FormatDuration(snap.Elapsed),
	)

	if snap.ChunksZeroFilled > 0 {
		base += fmt.Sprintf("  zeroed %s (%s)",
			FormatCount(snap.ChunksZeroFilled), FormatBytes(snap.BytesZeroFilled))
	}
	base += fmt.Sprintf("  retries %d", snap.Retries)

	return base
}
