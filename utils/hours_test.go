package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name     string
		opensAt  string
		closesAt string
		want     string
	}{
		{name: "morning to evening", opensAt: "08:00", closesAt: "18:30", want: "8:00 AM - 6:30 PM"},
		{name: "midnight opening", opensAt: "00:15", closesAt: "06:00", want: "12:15 AM - 6:00 AM"},
		{name: "noon closing", opensAt: "09:00", closesAt: "12:00", want: "9:00 AM - 12:00 PM"},
		{name: "late closing", opensAt: "17:00", closesAt: "23:45", want: "5:00 PM - 11:45 PM"},
		{name: "missing opening", opensAt: "", closesAt: "18:00", want: HoursUnavailable},
		{name: "missing closing", opensAt: "08:00", closesAt: "", want: HoursUnavailable},
		{name: "both missing", opensAt: "", closesAt: "", want: HoursUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHours(tt.opensAt, tt.closesAt))
		})
	}
}

func TestValidHoursPair(t *testing.T) {
	tests := []struct {
		name     string
		opensAt  string
		closesAt string
		want     bool
	}{
		{name: "normal schedule", opensAt: "08:00", closesAt: "18:30", want: true},
		{name: "one minute apart", opensAt: "08:00", closesAt: "08:01", want: true},
		{name: "equal times", opensAt: "08:00", closesAt: "08:00", want: false},
		{name: "closing before opening", opensAt: "18:00", closesAt: "08:00", want: false},
		{name: "hour out of range", opensAt: "25:00", closesAt: "26:00", want: false},
		{name: "minute out of range", opensAt: "08:61", closesAt: "18:00", want: false},
		{name: "missing zero padding", opensAt: "8:00", closesAt: "18:00", want: false},
		{name: "not a clock value", opensAt: "mañana", closesAt: "tarde", want: false},
		{name: "empty values", opensAt: "", closesAt: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidHoursPair(tt.opensAt, tt.closesAt))
		})
	}
}
