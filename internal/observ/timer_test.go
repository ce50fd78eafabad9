package observ

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	parse := tm.Begin("parse")
	tm.End(parse, "3 files")
	lint := tm.Begin("lint")
	tm.End(lint, "")
	tm.End(99, "ignored")

	r := tm.Report()
	require.Len(t, r.Phases, 2)
	assert.Equal(t, "parse", r.Phases[0].Name)
	assert.Equal(t, "3 files", r.Phases[0].Note)
	assert.GreaterOrEqual(t, r.TotalMS, r.Phases[0].DurationMS)
}

func TestTimerTimeRecordsFailure(t *testing.T) {
	tm := NewTimer()
	boom := errors.New("boom")
	err := tm.Time("load", func() error { return boom })
	require.ErrorIs(t, err, boom)

	r := tm.Report()
	require.Len(t, r.Phases, 1)
	assert.Equal(t, "failed: boom", r.Phases[0].Note)
}

func TestTimerSummary(t *testing.T) {
	assert.Empty(t, NewTimer().Report().Phases)

	tm := NewTimer()
	require.NoError(t, tm.Time("resolve", func() error { return nil }))
	s := tm.Summary()
	assert.True(t, strings.HasPrefix(s, "timings:\n"))
	assert.Contains(t, s, "resolve")
	assert.Contains(t, s, "total")
}
