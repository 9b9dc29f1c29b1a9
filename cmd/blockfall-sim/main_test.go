package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/replay"
)

func testOptions() options {
	cfg := config.Default()
	cfg.Seed = 42
	return options{
		Config:    cfg,
		Games:     3,
		MaxFrames: 3000,
		FrameStep: 50 * time.Millisecond,
		BotRate:   0.3,
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := run(testOptions())
	require.NoError(t, err)
	second, err := run(testOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Score.Samples, second.Score.Samples)
	assert.Equal(t, first.GameFrames.Samples, second.GameFrames.Samples)
	assert.Equal(t, first.Pieces, second.Pieces)
	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, first.Lines, sum(first.Score.Samples))
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestRunReport(t *testing.T) {
	report, err := run(testOptions())
	require.NoError(t, err)

	assert.Len(t, report.Score.Samples, 3)
	assert.LessOrEqual(t, report.Score.Min, report.Score.Max)
	assert.Positive(t, report.Pieces)
	assert.Equal(t, int64(sum(report.GameFrames.Samples)), report.TotalFrames)

	names := make([]string, 0, len(report.Systems))
	for _, row := range report.Systems {
		names = append(names, row.Name)
		assert.Equal(t, report.TotalFrames, row.Executions)
	}
	assert.ElementsMatch(t, []string{"GravitySystem", "WatchSystem", "Bot"}, names)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "# Blockfall Soak Report")
	assert.Contains(t, buf.String(), "| GravitySystem |")
	assert.Contains(t, buf.String(), "**Games:** 3")
}

func TestRunRecordsVerifiableGames(t *testing.T) {
	opts := testOptions()
	opts.Games = 2
	opts.RecordDir = t.TempDir()

	report, err := run(opts)
	require.NoError(t, err)

	for i, name := range []string{"game-001.jsonl.zst", "game-002.jsonl.zst"} {
		res, err := replay.Verify(filepath.Join(opts.RecordDir, name))
		require.NoError(t, err)
		assert.Equal(t, uint64(42+i), res.Header.Seed)
		assert.Equal(t, report.Score.Samples[i], res.Score)
	}
}

func TestStatsFinalize(t *testing.T) {
	s := Stats[time.Duration]{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats[int]
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}
