package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-01")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.December, 1), d)
	assert.Equal(t, "2025-12-01", d.String())

	for _, bad := range []string{"", "2025-13-01", "01.12.2025", "2025-12-1"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2025, time.December, 1)
	b := NewDate(2025, time.December, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  Date
	}{
		{"string", "2025-12-02", NewDate(2025, time.December, 2)},
		{"bytes", []byte("2025-12-02"), NewDate(2025, time.December, 2)},
		{"timestamp string", "2025-12-02 00:00:00+00:00", NewDate(2025, time.December, 2)},
		{"time", time.Date(2025, time.December, 2, 15, 0, 0, 0, time.UTC), NewDate(2025, time.December, 2)},
		{"null", nil, Date{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2025, time.January, 9).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-09", v)
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2025, time.December, 1, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, NewDate(2025, time.December, 2), DateOf(moment.In(loc)))
	assert.Equal(t, NewDate(2025, time.December, 1), DateOf(moment))
}
