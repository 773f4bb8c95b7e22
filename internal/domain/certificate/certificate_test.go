package certificate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 900, 1400))
	for y := 0; y < 1400; y++ {
		for x := 0; x < 900; x++ {
			img.Set(x, y, color.White)
		}
	}
	path := filepath.Join(t.TempDir(), "template.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func missingFonts(t *testing.T) *FontLocator {
	dir := t.TempDir()
	return NewFontLocator([]FontCandidate{
		{Path: filepath.Join(dir, "nope.ttf"), Description: "missing"},
		{Path: filepath.Join(dir, "nope.ttc"), Description: "missing collection"},
	})
}

func hasDarkPixel(img image.Image, rect image.Rectangle) bool {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0x8000 && g < 0x8000 && b < 0x8000 {
				return true
			}
		}
	}
	return false
}

func TestRender_FallbackFontDrawsOverlays(t *testing.T) {
	r := NewRenderer(writeTemplate(t), missingFonts(t), zerolog.Nop()).
		WithClock(func() time.Time { return time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) })

	out, err := r.Render("Ivan Petrov", 15, "Low", 3)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 900, 1400), img.Bounds())

	assert.True(t, hasDarkPixel(img, image.Rect(360, 610, 460, 630)), "name overlay")
	assert.True(t, hasDarkPixel(img, image.Rect(180, 1110, 260, 1130)), "level overlay")
	assert.True(t, hasDarkPixel(img, image.Rect(300, 1270, 380, 1290)), "date overlay")
	assert.False(t, hasDarkPixel(img, image.Rect(0, 0, 100, 100)))
}

func TestRender_MissingTemplate(t *testing.T) {
	r := NewRenderer(filepath.Join(t.TempDir(), "absent.png"), missingFonts(t), zerolog.Nop())

	_, err := r.Render("Ivan Petrov", 10, "Low", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplate)
}

func TestRender_BrokenTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := NewRenderer(path, missingFonts(t), zerolog.Nop()).Render("A B", 0, "Low", 1)
	assert.ErrorIs(t, err, ErrTemplate)
}

func TestFontLocator_ProbeAndResolve(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not a font"), 0o644))

	loc := NewFontLocator([]FontCandidate{
		{Path: filepath.Join(dir, "missing.ttf"), Description: "missing"},
		{Path: garbage, Description: "garbage"},
	})

	probes := loc.Probe()
	require.Len(t, probes, 2)
	for _, p := range probes {
		assert.False(t, p.Available)
		assert.Error(t, p.Err)
	}

	_, ok := loc.Resolve()
	assert.False(t, ok)

	faces, name, release := loc.Faces(48, 44)
	defer release()
	assert.Len(t, faces, 2)
	assert.Equal(t, "встроенный", name)
}

func TestNewFontLocator_Defaults(t *testing.T) {
	loc := NewFontLocator(nil)
	assert.Equal(t, DefaultFonts, loc.Candidates())
}
