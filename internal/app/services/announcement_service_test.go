package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathspoint/mathspoint/internal/app/models"
)

func TestPartitionAnnouncements(t *testing.T) {
	a1 := &models.Announcement{ID: 1, Title: "pinned one", IsPinned: true}
	a2 := &models.Announcement{ID: 2, Title: "regular one"}
	a3 := &models.Announcement{ID: 3, Title: "pinned two", IsPinned: true}

	pinned, regular := PartitionAnnouncements([]*models.Announcement{a1, a2, a3})

	assert.Len(t, pinned, 2)
	assert.Len(t, regular, 1)
	assert.Equal(t, int64(1), pinned[0].ID)
	assert.Equal(t, int64(3), pinned[1].ID)
	assert.Equal(t, int64(2), regular[0].ID)
}

func TestPartitionAnnouncements_Empty(t *testing.T) {
	pinned, regular := PartitionAnnouncements(nil)

	// both sections must serialize as [] rather than null
	assert.NotNil(t, pinned)
	assert.NotNil(t, regular)
	assert.Empty(t, pinned)
	assert.Empty(t, regular)
}

func TestCategorizeBoardError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"http 503", errors.New("unexpected status 503"), "Announcement service is temporarily unavailable"},
		{"upstream connect", errors.New("upstream connect error or disconnect/reset before headers"), "Announcement service is temporarily unavailable"},
		{"network failure", errors.New("network is unreachable"), "Network error while loading announcements"},
		{"fetch failure", errors.New("failed to fetch announcements"), "Network error while loading announcements"},
		{"timeout", errors.New("context deadline exceeded: timeout"), "Announcement request timed out"},
		{"unknown passes through", errors.New("relation does not exist"), "relation does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeBoardError(tt.err))
		})
	}
}

func TestFallbackAnnouncements(t *testing.T) {
	fallback := FallbackAnnouncements()

	assert.Len(t, fallback, 3)

	// negative ids mark the entries as synthetic
	for _, a := range fallback {
		assert.Less(t, a.ID, int64(0))
		assert.Equal(t, "Maths Point", a.Author)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Content)
	}

	pinned, regular := PartitionAnnouncements(fallback)
	assert.Len(t, pinned, 1)
	assert.Len(t, regular, 2)
}
