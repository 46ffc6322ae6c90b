package probe

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int, fill color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	file, err := os.Create(filepath.Join(dir, name+".png"))
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
}

func TestContinuityIdenticalStrips(t *testing.T) {
	t.Parallel()

	baselineDir, currentDir := t.TempDir(), t.TempDir()
	fill := color.RGBA{16, 16, 20, 255}
	writeTestPNG(t, baselineDir, "scroll", 100, 50, fill)
	writeTestPNG(t, currentDir, "scroll", 100, 50, fill)

	assert.NoError(t, NewContinuity(baselineDir, currentDir).Validate("scroll"))
}

func TestContinuityDriftWritesDiff(t *testing.T) {
	t.Parallel()

	baselineDir, currentDir := t.TempDir(), t.TempDir()
	writeTestPNG(t, baselineDir, "scroll", 100, 50, color.RGBA{16, 16, 20, 255})
	writeTestPNG(t, currentDir, "scroll", 100, 50, color.RGBA{255, 255, 255, 255})

	err := NewContinuity(baselineDir, currentDir).Validate("scroll")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drifted from baseline")

	_, statErr := os.Stat(filepath.Join(currentDir, "scroll_diff.png"))
	assert.NoError(t, statErr)
}

func TestContinuityTolerance(t *testing.T) {
	t.Parallel()

	baselineDir, currentDir := t.TempDir(), t.TempDir()
	base := image.NewRGBA(image.Rect(0, 0, 100, 100))
	cur := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			base.Set(x, y, color.RGBA{0, 0, 0, 255})
			cur.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	// 2% of pixels differ.
	for i := 0; i < 200; i++ {
		cur.Set(i%100, i/100, color.RGBA{255, 0, 0, 255})
	}
	for dir, img := range map[string]*image.RGBA{baselineDir: base, currentDir: cur} {
		file, err := os.Create(filepath.Join(dir, "strip.png"))
		require.NoError(t, err)
		require.NoError(t, png.Encode(file, img))
		require.NoError(t, file.Close())
	}

	c := NewContinuity(baselineDir, currentDir)
	assert.NoError(t, c.Validate("strip"))
	assert.Error(t, c.WithTolerance(0.01).Validate("strip"))
}

func TestContinuityDimensionMismatch(t *testing.T) {
	t.Parallel()

	baselineDir, currentDir := t.TempDir(), t.TempDir()
	fill := color.RGBA{0, 0, 0, 255}
	writeTestPNG(t, baselineDir, "scroll", 100, 50, fill)
	writeTestPNG(t, currentDir, "scroll", 200, 50, fill)

	err := NewContinuity(baselineDir, currentDir).Validate("scroll")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions differ")
}

func TestContinuityMissingBaseline(t *testing.T) {
	t.Parallel()

	baselineDir, currentDir := t.TempDir(), t.TempDir()
	writeTestPNG(t, currentDir, "scroll", 100, 50, color.RGBA{0, 0, 0, 255})

	err := NewContinuity(baselineDir, currentDir).Validate("scroll")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load baseline")
}
