package dolly

import "time"

// Config tunes the controller's thresholds, blends and timings.
//
// Blend factors are per-frame interpolation weights in (0, 1]: each frame
// the value moves that proportion of the way to its target, so smaller
// means heavier. The pressure blend is deliberately slower than the glow
// blend; the lag is the effect.
//
// Example:
//
//	cfg := dolly.DefaultConfig()
//	cfg.PressureSection = "machinery"
//	ctrl := dolly.New(doc, sched, cfg)
type Config struct {
	// RevealThreshold is the visible fraction that triggers a one-time reveal.
	RevealThreshold float64
	// ActiveThreshold is the visible fraction that makes a section active.
	ActiveThreshold float64
	// FooterThreshold is the visible fraction toggling the footer flag.
	FooterThreshold float64

	// GlowBlend is the per-frame blend for the glow follower.
	GlowBlend float64
	// GlowVelocityScale converts per-tick glow travel into the velocity hint.
	GlowVelocityScale float64
	// GlowVelocityMax caps the velocity hint.
	GlowVelocityMax float64

	// ScrollBlend is the per-frame blend for the eased scroll position that
	// feeds parallax and the geometry effects.
	ScrollBlend float64
	// PressureBlend is the per-frame blend for the pressure scalar.
	PressureBlend float64

	// ParallaxClamp bounds the raw viewport-center offset, px.
	ParallaxClamp float64
	// ParallaxNear and ParallaxFar scale the clamped offset for the two
	// visual layers. Far moves more.
	ParallaxNear float64
	ParallaxFar  float64

	// CompactScrollPx is the scroll offset past which the header compacts.
	CompactScrollPx float64

	// RotationDegrees is the full rotation applied across a traversal.
	RotationDegrees float64
	// PressureSection names the single section that gets the pressure and
	// rotation treatment. The source design only ever drove one.
	PressureSection string

	// NavFocusDelay is the pause before focus moves into the open drawer.
	NavFocusDelay time.Duration

	// IntroHeaderDelay, IntroHeroDelay and IntroCueDelay stage the one-shot
	// page-load sequence.
	IntroHeaderDelay time.Duration
	IntroHeroDelay   time.Duration
	IntroCueDelay    time.Duration
}

// DefaultConfig returns the tuning the marketing site ships with.
func DefaultConfig() Config {
	return Config{
		RevealThreshold:   0.2,
		ActiveThreshold:   0.55,
		FooterThreshold:   0.05,
		GlowBlend:         0.18,
		GlowVelocityScale: 0.08,
		GlowVelocityMax:   1,
		ScrollBlend:       0.12,
		PressureBlend:     0.045,
		ParallaxClamp:     240,
		ParallaxNear:      0.06,
		ParallaxFar:       0.14,
		CompactScrollPx:   64,
		RotationDegrees:   360,
		PressureSection:   "product",
		NavFocusDelay:     80 * time.Millisecond,
		IntroHeaderDelay:  150 * time.Millisecond,
		IntroHeroDelay:    450 * time.Millisecond,
		IntroCueDelay:     900 * time.Millisecond,
	}
}
