package dolly

import (
	"math"

	"github.com/teranos/dolly/host"
)

// scrollProgressTick is the bookkeeping that survives reduced motion and
// touch: the scroll-progress hint and the compact-header flag.
func (c *Controller) scrollProgressTick() {
	_, vh := c.doc.Viewport()
	scrollable := c.doc.ScrollHeight() - vh
	progress := 0.0
	if scrollable > 0 {
		progress = clamp01(c.scrollTarget / scrollable)
	}
	c.doc.SetPageVar(VarScrollProgress, fmtHint(progress))
	c.doc.SetPageMarker(MarkerHeaderCompact, c.scrollTarget > c.cfg.CompactScrollPx)
}

// parallaxTick publishes the two parallax layer offsets for the active
// section: its distance from viewport center, clamped, then scaled per
// layer. No active section, no parallax.
func (c *Controller) parallaxTick() {
	sec, ok := c.sectionByName(c.activeSection)
	if !ok {
		return
	}
	_, vh := c.doc.Viewport()
	offset := sec.Bounds().CenterY() - c.scrollCur - vh/2
	offset = clamp(offset, -c.cfg.ParallaxClamp, c.cfg.ParallaxClamp)
	c.doc.SetPageVar(VarParallaxNear, fmtHint(offset*c.cfg.ParallaxNear))
	c.doc.SetPageVar(VarParallaxFar, fmtHint(offset*c.cfg.ParallaxFar))
}

// glowTick eases the glow toward the raw pointer and derives a bounded
// velocity from the tick's travel. Exponential smoothing, not a timed
// animation: the blend factor is per-frame, so the follower never snaps.
func (c *Controller) glowTick() {
	prevX, prevY := c.glowX, c.glowY
	c.glowX += (c.pointerX - c.glowX) * c.cfg.GlowBlend
	c.glowY += (c.pointerY - c.glowY) * c.cfg.GlowBlend

	travel := math.Hypot(c.glowX-prevX, c.glowY-prevY)
	c.glowVelocity = math.Min(travel*c.cfg.GlowVelocityScale, c.cfg.GlowVelocityMax)

	c.doc.SetPageVar(VarGlowX, fmtHint(c.glowX))
	c.doc.SetPageVar(VarGlowY, fmtHint(c.glowY))
	c.doc.SetPageVar(VarGlowVelocity, fmtHint(c.glowVelocity))
}

// geometryTick drives the two traversal-keyed effects on the single
// pressure section: the sine-bell opacity + rotation pair, and the damped
// pressure scalar that visibly lags the same traversal.
func (c *Controller) geometryTick() {
	sec, ok := c.sectionByName(c.cfg.PressureSection)
	if !ok {
		return
	}
	_, vh := c.doc.Viewport()
	r := sec.Bounds()
	span := vh + r.Height
	if span <= 0 {
		return
	}
	// 0 as the section's top enters the viewport bottom, 1 as its bottom
	// leaves the top.
	p := clamp01((c.scrollCur + vh - r.Top) / span)

	sec.SetVar(VarSectionOpacity, fmtHint(math.Sin(p*math.Pi)))
	sec.SetVar(VarSectionRotation, fmtHint(p*c.cfg.RotationDegrees))

	c.pressureTarget = math.Sin(p * math.Pi)
	c.pressure += (c.pressureTarget - c.pressure) * c.cfg.PressureBlend
	sec.SetVar(VarPressure, fmtHint(c.pressure))
}

func (c *Controller) sectionByName(name string) (host.Element, bool) {
	if name == "" {
		return nil, false
	}
	for _, sec := range c.doc.Sections() {
		if sec.Name() == name {
			return sec, true
		}
	}
	return nil, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }
