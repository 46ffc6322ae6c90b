package probe

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FilmConfig defines the visual parameters for rendered film strips.
type FilmConfig struct {
	Width      int        // Image width in pixels
	Height     int        // Image height in pixels
	Background color.RGBA // Background color
	Margin     int        // Plot margin in pixels
}

// DefaultFilmConfig returns a dark, readable strip layout.
func DefaultFilmConfig() FilmConfig {
	return FilmConfig{
		Width:      960,
		Height:     320,
		Background: color.RGBA{16, 16, 20, 255},
		Margin:     24,
	}
}

// palette cycles across the plotted series.
var palette = []color.RGBA{
	{88, 166, 255, 255},
	{255, 123, 114, 255},
	{63, 185, 80, 255},
	{210, 153, 34, 255},
	{188, 140, 255, 255},
	{125, 133, 144, 255},
}

// FilmStrip renders traces into plotted PNG frames.
type FilmStrip struct {
	config FilmConfig
	font   font.Face
}

// NewFilmStrip creates a renderer with the given configuration.
func NewFilmStrip(config FilmConfig) *FilmStrip {
	return &FilmStrip{
		config: config,
		font:   basicfont.Face7x13,
	}
}

// Render plots every field of the trace as a polyline across the frame
// axis, each series normalized to its own range and drawn in a palette
// color with a label. NaN samples break the line.
func (fs *FilmStrip) Render(trace *Trace) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fs.config.Width, fs.config.Height))
	for y := 0; y < fs.config.Height; y++ {
		for x := 0; x < fs.config.Width; x++ {
			img.Set(x, y, fs.config.Background)
		}
	}
	if trace == nil || trace.Len() < 2 {
		fs.drawLabel(img, "no frames recorded", fs.config.Margin, fs.config.Margin, color.RGBA{125, 133, 144, 255})
		return img
	}

	for i, field := range trace.Fields {
		c := palette[i%len(palette)]
		fs.plotSeries(img, trace.Series(field), c)
		fs.drawLabel(img, field, fs.config.Margin, fs.config.Margin+i*14, c)
	}
	return img
}

// WritePNG renders the trace and writes it to path.
func (fs *FilmStrip) WritePNG(path string, trace *Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create film strip: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fs.Render(trace)); err != nil {
		return fmt.Errorf("encode film strip: %w", err)
	}
	return nil
}

func (fs *FilmStrip) plotSeries(img *image.RGBA, series []float64, c color.RGBA) {
	lo, hi := seriesRange(series)
	if math.IsNaN(lo) {
		return
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	m := fs.config.Margin
	plotW := fs.config.Width - 2*m
	plotH := fs.config.Height - 2*m

	prevOK := false
	var prevX, prevY int
	for i, v := range series {
		if math.IsNaN(v) {
			prevOK = false
			continue
		}
		x := m + i*plotW/(len(series)-1)
		y := m + plotH - int(float64(plotH)*(v-lo)/span)
		if prevOK {
			drawLine(img, prevX, prevY, x, y, c)
		}
		prevX, prevY = x, y
		prevOK = true
	}
}

func (fs *FilmStrip) drawLabel(img *image.RGBA, text string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: fs.font,
		Dot:  fixed.P(x, y+10),
	}
	d.DrawString(text)
}

func seriesRange(series []float64) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, v := range series {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}

// drawLine is a plain Bresenham segment.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
