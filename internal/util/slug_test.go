package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Café au Lait!", "cafe-au-lait"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-slugged", "already-slugged"},
		{"Ünïcödé Nörmälïzätïön", "unicode-normalization"},
		{"100% Go", "100-go"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("go-concurrency-patterns"))
	assert.True(t, IsValidSlug("2024"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug("double--hyphen"))
	assert.False(t, IsValidSlug("Upper-Case"))
}
