package blobstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"/":          "",
		".":          "",
		"photos/":    "photos",
		"/photos/a":  "photos/a",
		"photos//a/": "photos/a",
		"../escape":  "escape",
	}
	for in, want := range tests {
		assert.Equal(t, want, Clean(in), "Clean(%q)", in)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a.png", Join("", "a.png"))
	assert.Equal(t, "photos/a.png", Join("photos", "a.png"))
	assert.Equal(t, "a.png", Entry{Name: "photos/a.png"}.Base())
}
