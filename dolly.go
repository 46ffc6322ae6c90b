// Package dolly is the motion and interaction controller behind the
// marketing site: scroll-triggered reveals, pointer- and scroll-driven
// parallax, a glow follower, a mobile navigation drawer, and a staged
// page-load intro. Named for the camera dolly, the rig that gives a
// tracking shot its parallax depth.
//
// The controller runs against a host.Document and a host.Scheduler rather
// than a concrete page, so the whole thing is drivable from tests and
// terminals. It publishes named render hints (see hints.go) that a styling
// layer consumes; it never touches layout directly.
//
// Basic usage:
//
//	ctrl := dolly.New(doc, sched, dolly.DefaultConfig())
//	ctrl.Start()
//	defer ctrl.Stop()
//
// For deterministic driving in tests, see the choreo package:
//
//	choreo.New(t, sim, ctrl).
//		Start().
//		ScrollTo(800).
//		StepFrames(12).
//		AssertActiveSection("product").
//		Stop()
//
// Everything the controller looks up on the document is optional: a page
// without a footer simply has no footer flag, a page without a nav drawer
// has no drawer. Missing pieces disable their effect and nothing else.
//
// All callbacks are dispatched by the host on a single goroutine,
// interleaved with frames but never concurrent with them. The controller
// keeps no locks and is not safe for concurrent use from other goroutines.
package dolly

import (
	"time"

	"github.com/teranos/dolly/host"
)

// Controller owns the motion state and every subscription against the page.
// Construct with New, wire up with Start, tear down with Stop. One instance
// per page; the zero value is not usable.
type Controller struct {
	doc   host.Document
	sched host.Scheduler
	cfg   Config

	reduced bool
	touch   bool

	// Pointer samples, page coordinates.
	pointerX, pointerY float64
	glowX, glowY       float64
	glowVelocity       float64

	// Scroll samples. scrollTarget is the raw sampled offset; scrollCur
	// eases toward it and feeds parallax and geometry.
	scrollTarget float64
	scrollCur    float64

	pressure       float64
	pressureTarget float64

	activeSection string

	subs   map[int]*subscription
	nextID int

	nav   *navDrawer
	intro *introSequencer

	cancels   []func()
	stopFrame func()
	started   bool
	stopped   bool
}

// New creates a controller against the given document and scheduler.
// Nothing is observed or published until Start.
func New(doc host.Document, sched host.Scheduler, cfg Config) *Controller {
	return &Controller{
		doc:   doc,
		sched: sched,
		cfg:   cfg,
		subs:  make(map[int]*subscription),
	}
}

// Start samples the environment, attaches observers and input handlers,
// plays the intro sequence and begins the frame loop. Calling Start twice
// is a no-op.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true

	c.reduced = c.doc.ReducedMotion()
	c.touch = c.doc.TouchOnly()

	c.scrollTarget = c.doc.ScrollOffset()
	c.scrollCur = c.scrollTarget

	// Glow starts at viewport center so the first pointer sample doesn't
	// whip it across the page.
	w, h := c.doc.Viewport()
	c.pointerX, c.pointerY = w/2, h/2
	c.glowX, c.glowY = c.pointerX, c.pointerY

	c.attachObservers()
	c.attachInput()
	c.nav = newNavDrawer(c)
	c.intro = newIntroSequencer(c)
	c.intro.play()

	c.stopFrame = c.sched.OnFrame(c.frame)
}

// Stop cancels the frame loop, every subscription and any pending timers.
// The page keeps whatever hints were last published. Idempotent.
func (c *Controller) Stop() {
	if !c.started || c.stopped {
		return
	}
	c.stopped = true

	if c.stopFrame != nil {
		c.stopFrame()
	}
	for id := range c.subs {
		c.unsubscribe(id)
	}
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
	if c.nav != nil {
		c.nav.teardown()
	}
	if c.intro != nil {
		c.intro.teardown()
	}
}

// ActiveSection returns the name of the section currently marked active,
// or "" before any section has qualified.
func (c *Controller) ActiveSection() string { return c.activeSection }

// Pressure returns the current damped pressure scalar.
func (c *Controller) Pressure() float64 { return c.pressure }

// GlowPosition returns the smoothed glow follower position.
func (c *Controller) GlowPosition() (x, y float64) { return c.glowX, c.glowY }

// NavOpen reports whether the navigation drawer is open.
func (c *Controller) NavOpen() bool { return c.nav != nil && c.nav.open }

// attachInput registers the raw input handlers. Their job is sampling
// only; all derived work happens on the next frame.
func (c *Controller) attachInput() {
	c.cancels = append(c.cancels,
		c.doc.OnPointerMove(c.pointerMoved),
		c.doc.OnScroll(c.scrolled),
		c.doc.OnKey(c.keyPressed),
	)
}

func (c *Controller) keyPressed(k host.Key) {
	if c.nav != nil {
		c.nav.handleKey(k)
	}
}

// frame is the per-tick update. It self-reschedules via the host scheduler
// and only ever stops through Stop.
func (c *Controller) frame(now time.Time) {
	c.scrollProgressTick()
	if c.reduced || c.touch {
		return
	}
	c.scrollCur += (c.scrollTarget - c.scrollCur) * c.cfg.ScrollBlend
	c.parallaxTick()
	c.glowTick()
	c.geometryTick()
}
