package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
// It returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Lengths returns num random section lengths in [minLen, maxLen].
func (r *RNG) Lengths(num, minLen, maxLen int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	lengths := make([]int, num)
	for i := range lengths {
		lengths[i] = minLen + r.rand.Intn(maxLen-minLen+1)
	}
	return lengths
}

// Sources returns n distinct source names "img-000.png", "img-001.png", ...
func Sources(n int) []string {
	sources := make([]string, n)
	for i := range sources {
		sources[i] = fmt.Sprintf("img-%03d.png", i)
	}
	return sources
}

func fixture(w, h int) *image.Paletted {
	palette := color.Palette{color.Black, color.White}
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	for x := 0; x < w; x++ {
		img.SetColorIndex(x, x%h, 1)
	}
	return img
}

// PNG returns a w x h PNG image.
func PNG(w, h int) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, fixture(w, h)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// JPEG returns a w x h JPEG image.
func JPEG(w, h int) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, fixture(w, h), nil); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// GIF returns a w x h GIF image.
func GIF(w, h int) []byte {
	var buf bytes.Buffer
	if err := gif.Encode(&buf, fixture(w, h), nil); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
