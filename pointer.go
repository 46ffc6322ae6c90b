package dolly

// pointerMoved records the raw pointer sample and, for every section
// currently intersecting the viewport, publishes the pointer's position
// normalized to that section's box (0..1 per axis) for spotlight effects.
//
// The handler reads geometry but writes only hints, so it cannot thrash
// layout; everything motion-derived waits for the next frame. Spotlight
// sampling is skipped entirely under reduced motion or on touch devices,
// where there is no hover to spotlight.
func (c *Controller) pointerMoved(x, y float64) {
	c.pointerX, c.pointerY = x, y
	if c.reduced || c.touch {
		return
	}

	_, vh := c.doc.Viewport()
	scroll := c.doc.ScrollOffset()
	for _, sec := range c.doc.Sections() {
		r := sec.Bounds()
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		top := r.Top - scroll
		if top+r.Height < 0 || top > vh {
			continue
		}
		sec.SetVar(VarSpotX, fmtHint(clamp01((x-r.Left)/r.Width)))
		sec.SetVar(VarSpotY, fmtHint(clamp01((y-top)/r.Height)))
	}
}

// scrolled records the raw scroll sample. Derived values (progress,
// parallax, geometry) are recomputed on the next frame, not here.
func (c *Controller) scrolled(offset float64) {
	c.scrollTarget = offset
}
