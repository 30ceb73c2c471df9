package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple list", "algebra,geometry", []string{"algebra", "geometry"}},
		{"whitespace trimmed", " algebra , geometry ", []string{"algebra", "geometry"}},
		{"empties dropped", "algebra,,geometry,", []string{"algebra", "geometry"}},
		{"single tag", "calculus", []string{"calculus"}},
		{"empty input", "", []string{}},
		{"only commas", ",,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.raw))
		})
	}
}

func TestCategorySlug(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Practice Papers", "practice-papers"},
		{"NOTES", "notes"},
		{"  Sample   Questions  ", "sample-questions"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorySlug(tt.category))
		})
	}
}

func TestContains(t *testing.T) {
	list := []string{"assignments", "library"}

	assert.True(t, Contains(list, "assignments"))
	assert.False(t, Contains(list, "sessions"))
	assert.False(t, Contains(nil, "assignments"))
}
