package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"08:15", 8*60 + 15, false},
		{"14:00", 14 * 60, false},
		{"00:00", 0, false},
		{"23:59", 23*60 + 59, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"8.15", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:15", FormatClock(8*60+15))
	assert.Equal(t, "14:00", FormatClock(14*60))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:45", FormatClock(9*60+45))
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += 7 {
		parsed, err := ParseClock(FormatClock(minutes))
		assert.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
}
