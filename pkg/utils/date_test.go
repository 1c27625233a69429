package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		wantErr  bool
	}{
		{
			name:     "empty string yields nil",
			input:    "",
			expected: nil,
		},
		{
			name:  "valid date",
			input: "2026-03-15",
			expected: func() *time.Time {
				d := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
				return &d
			}(),
		},
		{
			name:    "wrong layout",
			input:   "15/03/2026",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, date)
		})
	}
}
