package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.December, 1, hour, minute, 0, 0, time.UTC)
}

func TestDerivedHours(t *testing.T) {
	tests := []struct {
		name    string
		entries []TimeEntry
		want    float64
	}{
		{"no entries", nil, 0},
		{"single pair", []TimeEntry{
			{EventTime: at(9, 0), EventType: EventIn},
			{EventTime: at(17, 30), EventType: EventOut},
		}, 8.5},
		{"two pairs", []TimeEntry{
			{EventTime: at(9, 0), EventType: EventIn},
			{EventTime: at(13, 0), EventType: EventOut},
			{EventTime: at(14, 0), EventType: EventIn},
			{EventTime: at(18, 0), EventType: EventOut},
		}, 8},
		{"open in ignored", []TimeEntry{
			{EventTime: at(9, 0), EventType: EventIn},
			{EventTime: at(12, 0), EventType: EventOut},
			{EventTime: at(13, 0), EventType: EventIn},
		}, 3},
		{"out without in ignored", []TimeEntry{
			{EventTime: at(8, 0), EventType: EventOut},
			{EventTime: at(9, 0), EventType: EventIn},
			{EventTime: at(10, 20), EventType: EventOut},
		}, 1.33},
		{"repeated in keeps first", []TimeEntry{
			{EventTime: at(9, 0), EventType: EventIn},
			{EventTime: at(9, 30), EventType: EventIn},
			{EventTime: at(11, 0), EventType: EventOut},
		}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivedHours(tt.entries))
		})
	}
}

func TestWorkDay_Hours(t *testing.T) {
	wd := WorkDay{}
	assert.Equal(t, 0.0, wd.Hours())

	h := 7.5
	wd.TotalHours = &h
	assert.Equal(t, 7.5, wd.Hours())
}

func TestParseEventKind(t *testing.T) {
	kind, err := ParseEventKind("in")
	assert.NoError(t, err)
	assert.Equal(t, EventIn, kind)

	kind, err = ParseEventKind(" OUT ")
	assert.NoError(t, err)
	assert.Equal(t, EventOut, kind)

	_, err = ParseEventKind("BREAK")
	assert.Error(t, err)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8.0", FormatHours(8))
	assert.Equal(t, "7.5", FormatHours(7.5))
	assert.Equal(t, "1.33", FormatHours(1.33))
	assert.Equal(t, "0.0", FormatHours(0))
}
