package repositories

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendUnique(t *testing.T) {
	tests := []struct {
		name        string
		current     []string
		value       string
		want        []string
		wantChanged bool
	}{
		{
			name:        "appends to empty array",
			current:     nil,
			value:       "7",
			want:        []string{"7"},
			wantChanged: true,
		},
		{
			name:        "appends new value",
			current:     []string{"7", "12"},
			value:       "3",
			want:        []string{"7", "12", "3"},
			wantChanged: true,
		},
		{
			name:        "repeat value leaves array unchanged",
			current:     []string{"7", "12"},
			value:       "12",
			want:        []string{"7", "12"},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := appendUnique(tt.current, tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

// Tracking keys on record ids, so two submissions of identically named files
// to different assignments stay distinct entries.
func TestAppendUniqueKeysOnIDs(t *testing.T) {
	var tracked []string
	var changed bool

	firstSubmissionID := strconv.FormatInt(41, 10)
	secondSubmissionID := strconv.FormatInt(42, 10)

	tracked, changed = appendUnique(tracked, firstSubmissionID)
	assert.True(t, changed)
	tracked, changed = appendUnique(tracked, secondSubmissionID)
	assert.True(t, changed)
	assert.Equal(t, []string{"41", "42"}, tracked)

	// A repeated id must not be recorded twice.
	tracked, changed = appendUnique(tracked, firstSubmissionID)
	assert.False(t, changed)
	assert.Len(t, tracked, 2)
}
