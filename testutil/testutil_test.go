package testutil

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Lengths(8, 0, 5)
	assert.Len(t, first, 8)
	for _, l := range first {
		assert.GreaterOrEqual(t, l, 0)
		assert.LessOrEqual(t, l, 5)
	}

	rng.Reset()
	assert.Equal(t, first, rng.Lengths(8, 0, 5))
	assert.Equal(t, int64(4711), rng.Seed())
	assert.Equal(t, 0, rng.Intn(0))
}

func TestSources(t *testing.T) {
	assert.Equal(t, []string{"img-000.png", "img-001.png"}, Sources(2))
	assert.Empty(t, Sources(0))
}

func TestImages(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{"png", PNG(4, 3), "png"},
		{"jpeg", JPEG(4, 3), "jpeg"},
		{"gif", GIF(4, 3), "gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, format, err := image.DecodeConfig(bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, 4, cfg.Width)
			assert.Equal(t, 3, cfg.Height)
		})
	}
}
