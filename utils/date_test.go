package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStart(t *testing.T) {
	in := time.Date(2024, 3, 15, 18, 42, 7, 123, time.FixedZone("IST", 5*3600+1800))
	got := DayStart(in)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDayMarkerLayouts(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2024-03-15",
		"2024-03-15T08:30:00Z",
		"2024-03-15T08:30:00.123Z",
	} {
		got, err := DayMarker(raw)
		require.NoError(t, err, raw)
		assert.True(t, got.Equal(want), raw)
	}
}

func TestDayMarkerEmptyMeansToday(t *testing.T) {
	got, err := DayMarker("  ")
	require.NoError(t, err)
	assert.True(t, got.Equal(DayStart(time.Now())))
}

func TestDayMarkerRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"yesterday", "15/03/2024", "2024-13-40"} {
		_, err := DayMarker(raw)
		assert.Error(t, err, raw)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestStartOfWeek(t *testing.T) {
	// Friday 2024-03-15 belongs to the week starting Monday 2024-03-11
	friday := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), StartOfWeek(friday))

	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, StartOfWeek(monday))

	sunday := time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, StartOfWeek(sunday))
}
