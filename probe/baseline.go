package probe

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Continuity validates rendered film strips against stored baselines, the
// way a continuity supervisor checks takes against the last good one.
type Continuity struct {
	baselineDir string
	currentDir  string
	tolerance   float64 // Fraction of differing pixel channels tolerated
}

// NewContinuity creates a validator comparing currentDir strips against
// baselineDir with a 5% default tolerance.
func NewContinuity(baselineDir, currentDir string) *Continuity {
	return &Continuity{
		baselineDir: baselineDir,
		currentDir:  currentDir,
		tolerance:   0.05,
	}
}

// WithTolerance adjusts the accepted difference fraction.
func (c *Continuity) WithTolerance(tolerance float64) *Continuity {
	c.tolerance = tolerance
	return c
}

// Validate compares the named strip against its baseline. On a mismatch
// beyond tolerance it writes a highlight diff image next to the current
// strip and returns an error describing the difference.
func (c *Continuity) Validate(name string) error {
	baselinePath := fmt.Sprintf("%s/%s.png", c.baselineDir, name)
	currentPath := fmt.Sprintf("%s/%s.png", c.currentDir, name)

	baseline, err := loadPNG(baselinePath)
	if err != nil {
		return fmt.Errorf("load baseline: %w", err)
	}
	current, err := loadPNG(currentPath)
	if err != nil {
		return fmt.Errorf("load current: %w", err)
	}

	difference, err := pixelDifference(baseline, current)
	if err != nil {
		return err
	}
	if difference > c.tolerance {
		diffPath := fmt.Sprintf("%s/%s_diff.png", c.currentDir, name)
		if err := writeDiffImage(baseline, current, diffPath); err != nil {
			// The diff image is a debugging aid; the mismatch stands either way.
			fmt.Fprintf(os.Stderr, "warning: failed to write diff image: %v\n", err)
		}
		return fmt.Errorf("film strip drifted from baseline: %.2f%% difference (tolerance %.2f%%)",
			difference*100, c.tolerance*100)
	}
	return nil
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// pixelDifference returns the fraction of pixels whose color differs
// between the two images.
func pixelDifference(a, b image.Image) (float64, error) {
	if a.Bounds() != b.Bounds() {
		return 0, fmt.Errorf("image dimensions differ: %v vs %v", a.Bounds(), b.Bounds())
	}
	bounds := a.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0, nil
	}
	differing := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				differing++
			}
		}
	}
	return float64(differing) / float64(total), nil
}

// writeDiffImage renders differing pixels in red over a dimmed baseline.
func writeDiffImage(baseline, current image.Image, path string) error {
	bounds := baseline.Bounds()
	diff := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			br, bg, bb, _ := baseline.At(x, y).RGBA()
			cr, cg, cb, _ := current.At(x, y).RGBA()
			if br != cr || bg != cg || bb != cb {
				diff.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				diff.Set(x, y, color.RGBA{uint8(br >> 10), uint8(bg >> 10), uint8(bb >> 10), 255})
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, diff)
}
