// Package host abstracts the page environment the motion controller runs
// against: element geometry, render-hint publication, input events, and a
// display-refresh scheduler.
//
// The contract mirrors a browser page without depending on one. Every lookup
// is optional: a missing element comes back with ok == false and the caller
// is expected to disable the dependent effect rather than fail. Hosts
// dispatch all callbacks on a single goroutine, interleaved with frame
// callbacks but never concurrent with them.
//
// Two hosts ship with the package: Sim, an in-memory page used by tests and
// the demo, and TickScheduler, a real-time frame source for hosts that pump
// their own document.
package host

import "time"

// Rect describes element geometry in page coordinates, before scrolling.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the page-space bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// CenterY returns the page-space vertical center.
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Key identifies the keyboard inputs the controller reacts to.
type Key int

const (
	// KeyEscape closes the navigation drawer.
	KeyEscape Key = iota
	// KeyTab moves focus forward inside the drawer's focus trap.
	KeyTab
	// KeyShiftTab moves focus backward inside the drawer's focus trap.
	KeyShiftTab
)

// Element is a handle on a single page element.
//
// SetVar publishes a named render hint scoped to the element (the CSS custom
// property analog); SetMarker toggles a named presentation state (the class
// toggle analog). Both are write-only from the controller's point of view.
type Element interface {
	// Name returns the element's stable name attribute, or "" when unnamed.
	Name() string
	// Bounds returns the element's page-space geometry.
	Bounds() Rect
	// SetVar publishes an element-scoped render hint.
	SetVar(name, value string)
	// SetMarker toggles an element-scoped state marker.
	SetMarker(name string, on bool)
	// Focus moves keyboard focus to the element.
	Focus()
	// Focusables returns the focusable descendants in document order.
	Focusables() []Element
}

// Document is the page the controller observes and publishes into.
//
// Geometry queries reflect current layout; visibility observation is
// push-based so the controller never polls. Input registration follows the
// add-listener model: the returned cancel func detaches the handler.
type Document interface {
	// Find looks up a single element by its role selector ("header",
	// "footer", "nav-toggle", ...). ok is false when absent.
	Find(selector string) (el Element, ok bool)
	// Sections returns the named content sections in document order.
	Sections() []Element
	// RevealTargets returns all elements marked for one-time reveal.
	RevealTargets() []Element

	// Viewport returns the visible width and height.
	Viewport() (w, h float64)
	// ScrollOffset returns the current vertical scroll position.
	ScrollOffset() float64
	// ScrollHeight returns the total scrollable document height.
	ScrollHeight() float64

	// SetPageVar publishes a page-scoped render hint.
	SetPageVar(name, value string)
	// SetPageMarker toggles a page-scoped state marker.
	SetPageMarker(name string, on bool)

	// LockScroll freezes page scrolling while the nav drawer is open.
	LockScroll()
	// UnlockScroll releases a previous LockScroll.
	UnlockScroll()
	// Focused reports the element currently holding keyboard focus.
	Focused() (el Element, ok bool)

	// ReducedMotion reports the user's reduced-motion preference.
	ReducedMotion() bool
	// TouchOnly reports whether the input device cannot hover.
	TouchOnly() bool

	// ObserveVisibility streams an element's visible fraction (0..1) to fn
	// whenever it may have changed, including once at registration time.
	ObserveVisibility(el Element, fn func(fraction float64)) (cancel func())

	// OnPointerMove registers a pointer position handler.
	OnPointerMove(fn func(x, y float64)) (cancel func())
	// OnScroll registers a scroll offset handler.
	OnScroll(fn func(offset float64)) (cancel func())
	// OnKey registers a keyboard handler.
	OnKey(fn func(k Key)) (cancel func())
	// OnActivate registers a click/tap handler for one element.
	OnActivate(el Element, fn func()) (cancel func())
}

// Scheduler is the display-refresh scheduling primitive.
//
// OnFrame registers a callback invoked once per refresh tick until the
// returned stop func is called; there is no other termination. After runs fn
// once after d elapses unless cancelled first.
type Scheduler interface {
	OnFrame(fn func(now time.Time)) (stop func())
	After(d time.Duration, fn func()) (cancel func())
}
