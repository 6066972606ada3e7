package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2, 10}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(10), s.Max)
	assert.Equal(t, time.Duration(4), s.Avg)
	assert.Equal(t, time.Duration(10), s.P99)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestStatsFinalizeLargeRun(t *testing.T) {
	const n = 225000
	s := Stats{Samples: make([]time.Duration, n)}
	for i := range s.Samples {
		s.Samples[i] = time.Duration(n - i)
	}

	start := time.Now()
	s.Finalize()
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(n), s.Max)
	assert.Equal(t, time.Duration(222750), s.P99)
	assert.Equal(t, time.Duration(n), s.Samples[0], "samples keep their order")
}

func TestBotRate(t *testing.T) {
	never := newBot(1, 0)
	for range 100 {
		_, ok := never.next()
		assert.False(t, ok)
	}

	always := newBot(1, 1)
	for range 100 {
		_, ok := always.next()
		assert.True(t, ok)
	}
}

func TestSoakReport(t *testing.T) {
	report := &Report{}
	soak(soakConfig{
		gameTime: 10 * time.Minute,
		step:     16 * time.Millisecond,
		seed:     7,
		botRate:  0.3,
	}, zap.NewNop(), report)
	report.UpdateTime.Finalize()

	assert.Equal(t, int64(len(report.UpdateTime.Samples)), report.TotalFrames)
	assert.Positive(t, report.Games, "a random bot tops out within ten minutes")
	require.Len(t, report.Systems, 4)
	assert.Equal(t, "input", report.Systems[0].Name)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "# Blockfall Soak Report")
	assert.Contains(t, buf.String(), "- clock:")
}
