package models

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"local text", "2025-12-03 09:15:00"},
		{"with offset", "2025-12-03 09:15:00+03:00"},
		{"with nanos and offset", "2025-12-03 09:15:00.123456789-07:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value)
			require.NoError(t, err)
			assert.Equal(t, "2025-12-03 09:15:00", got.Format(TimestampLayout))
			assert.Equal(t, time.Local, got.Location())
		})
	}

	_, err := ParseTimestamp("03.12.2025 09:15")
	assert.Error(t, err)
}

func TestLocalTimeSerializer_Value(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	moment := time.Date(2025, time.December, 3, 6, 0, 0, 0, time.UTC).In(loc)

	v, err := LocalTimeSerializer{}.Value(context.Background(), nil, reflect.Value{}, moment)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-03 09:00:00", v)

	_, err = LocalTimeSerializer{}.Value(context.Background(), nil, reflect.Value{}, "2025-12-03")
	assert.Error(t, err)
}
