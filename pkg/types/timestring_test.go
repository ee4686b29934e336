package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 10, 14, 5, 0, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestHour(t *testing.T) {
	assert.Equal(t, 9, TimeString("09:00").Hour())
	assert.Equal(t, 21, TimeString("21:00").Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
	assert.Equal(t, -1, TimeString("").Hour())
}

func TestToMinutes(t *testing.T) {
	minutes, err := TimeString("10:30").ToMinutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").ToMinutes()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "11:15", ts.String())
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("21:00").IsAfter(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsBefore(TimeString("09:00")))
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan([]byte("09:30:00")))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, "11:00", ts.String())
}
