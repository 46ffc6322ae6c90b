package dolly

import "strconv"

// Render hints published by the controller. Page-scoped vars land on the
// document, section-scoped vars on the owning section element. The styling
// layer owns what they mean visually; the controller only promises the
// numbers.
const (
	// VarScrollProgress is the fraction of scrollable distance traversed, 0..1.
	VarScrollProgress = "--scroll-progress"
	// VarParallaxNear is the clamped parallax offset for the near layer, px.
	VarParallaxNear = "--parallax-near"
	// VarParallaxFar is the clamped parallax offset for the far layer, px.
	VarParallaxFar = "--parallax-far"
	// VarGlowX and VarGlowY are the smoothed glow follower position, px.
	VarGlowX = "--glow-x"
	VarGlowY = "--glow-y"
	// VarGlowVelocity is the bounded per-tick glow speed.
	VarGlowVelocity = "--glow-velocity"
	// VarSectionOpacity is the bell-curve opacity for the pressure section.
	VarSectionOpacity = "--section-opacity"
	// VarSectionRotation is the traversal-proportional rotation, degrees.
	VarSectionRotation = "--section-rotation"
	// VarPressure is the damped pressure scalar, 0..1.
	VarPressure = "--pressure"
	// VarSpotX and VarSpotY are the pointer position normalized to a
	// section's box, 0..1 per axis.
	VarSpotX = "--spot-x"
	VarSpotY = "--spot-y"
)

// State markers toggled by the controller.
const (
	// MarkerVisible marks a reveal target as permanently revealed.
	MarkerVisible = "is-visible"
	// MarkerActive marks the current active section.
	MarkerActive = "is-active"
	// MarkerFooterVisible is the page-level footer visibility flag.
	MarkerFooterVisible = "footer-visible"
	// MarkerHeaderCompact is on once scroll passes the compact threshold.
	MarkerHeaderCompact = "header-compact"
	// MarkerNavOpen is the page-level drawer state.
	MarkerNavOpen = "nav-open"
	// MarkerNavExpanded mirrors the drawer state on the toggle control.
	MarkerNavExpanded = "nav-expanded"
)

// fmtHint renders a numeric hint the way the styling layer expects it:
// plain decimal, enough precision for sub-pixel motion, no exponent.
func fmtHint(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
