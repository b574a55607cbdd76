package config_test

import (
	"strings"
	"testing"

	"github.com/bamsammich/salvage/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroChunkSize(t *testing.T) {
	t.Parallel()

	for _, in := range []config.Inputs{
		{Input: "in", Output: "out"},
		{Input: "in", Output: "out", StartOffset: 10, EndOffset: 20},
		{Input: "in", Output: "out", StartOffset: 30, EndOffset: 20},
	} {
		_, err := config.New(in)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	}
}

func TestNew_ChunkSizeTooLarge(t *testing.T) {
	t.Parallel()

	_, err := config.New(config.Inputs{Input: "in", Output: "out", ChunkSize: config.MaxChunkSize + 1})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.New(config.Inputs{Input: "in", Output: "out", ChunkSize: config.MaxChunkSize})
	assert.NoError(t, err)
}

func TestNew_OutputPathTooLong(t *testing.T) {
	t.Parallel()

	_, err := config.New(config.Inputs{
		Input:     "in",
		Output:    strings.Repeat("a", config.MaxPathLen+1),
		ChunkSize: 4,
	})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.New(config.Inputs{
		Input:     "in",
		Output:    strings.Repeat("a", config.MaxPathLen),
		ChunkSize: 4,
	})
	assert.NoError(t, err)
}

func TestSession_NoOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int64
		want       bool
	}{
		{"unbounded", 100, 0, false},
		{"start before end", 10, 20, false},
		{"start equals end", 20, 20, true},
		{"start past end", 30, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := config.New(config.Inputs{
				Input: "in", Output: "out", ChunkSize: 4,
				StartOffset: tt.start, EndOffset: tt.end,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.NoOp())
		})
	}
}

func TestSession_Offset(t *testing.T) {
	t.Parallel()

	s, err := config.New(config.Inputs{Input: "in", Output: "out", ChunkSize: 512, StartOffset: 100})
	require.NoError(t, err)

	assert.Equal(t, int64(100), s.Offset(0))
	assert.Equal(t, int64(612), s.Offset(1))
	assert.Equal(t, int64(5220), s.Offset(10))

	end, ok := s.EndOffset()
	assert.False(t, ok)
	assert.Zero(t, end)
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	in, err := config.ParseArgs([]string{"/dev/sdb1", "out.img"}, config.DefaultChunkSize)
	require.NoError(t, err)
	assert.Equal(t, config.Inputs{Input: "/dev/sdb1", Output: "out.img", ChunkSize: config.DefaultChunkSize}, in)

	in, err = config.ParseArgs([]string{"a", "b", "4K", "512", "1M"}, config.DefaultChunkSize)
	require.NoError(t, err)
	assert.Equal(t, int64(4096), in.ChunkSize)
	assert.Equal(t, int64(512), in.StartOffset)
	assert.Equal(t, int64(1<<20), in.EndOffset)
}

func TestParseArgs_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"missing output", []string{"a"}},
		{"zero chunk", []string{"a", "b", "0"}},
		{"garbage chunk", []string{"a", "b", "lots"}},
		{"negative start", []string{"a", "b", "4", "-1"}},
		{"garbage end", []string{"a", "b", "4", "0", "x"}},
		{"wrapping start", []string{"a", "b", "4", "16777217T"}},
		{"non-finite end", []string{"a", "b", "4", "0", "Inf"}},
		{"too many", []string{"a", "b", "4", "0", "8", "9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseArgs(tt.args, config.DefaultChunkSize)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
