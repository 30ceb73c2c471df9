package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestSessionDurationMinutes(t *testing.T) {
	login := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		logout time.Time
		want   int
	}{
		{"whole minutes", login.Add(45 * time.Minute), 45},
		{"rounds up", login.Add(10*time.Minute + 40*time.Second), 11},
		{"rounds down", login.Add(10*time.Minute + 20*time.Second), 10},
		{"zero duration", login, 0},
		{"clock skew never negative", login.Add(-5 * time.Minute), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionDurationMinutes(login, tt.logout))
		})
	}
}
