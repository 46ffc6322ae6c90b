package host

import "time"

// frameInterval is the simulated refresh period, a 60Hz-ish tick.
const frameInterval = 16 * time.Millisecond

// Sim is an in-memory page implementing Document and Scheduler.
//
// Tests and the demo build a page out of rectangles, register a controller
// against it, and drive it deterministically: SetScroll, MovePointer and
// PressKey dispatch input handlers synchronously, Step advances simulated
// time one frame at a time, firing due timers and then frame callbacks.
// Published vars and markers are recorded and can be read back.
//
// Sim is single-goroutine by design, matching the cooperative scheduling of
// the environment it stands in for. It is not safe for concurrent use.
type Sim struct {
	viewportW  float64
	viewportH  float64
	pageHeight float64

	scroll       float64
	scrollLocked bool
	reduced      bool
	touch        bool

	byName   map[string]*SimElement
	sections []*SimElement
	reveals  []*SimElement

	pageVars    map[string]string
	pageMarkers map[string]bool
	focused     *SimElement

	now      time.Time
	nextID   int
	frames   map[int]func(now time.Time)
	timers   map[int]*simTimer
	visObs   map[int]*simObserver
	pointers map[int]func(x, y float64)
	scrolls  map[int]func(offset float64)
	keys     map[int]func(k Key)
}

type simTimer struct {
	due time.Time
	fn  func()
}

type simObserver struct {
	el *SimElement
	fn func(fraction float64)
}

// NewSim creates an empty page with the given viewport and total height.
func NewSim(viewportW, viewportH, pageHeight float64) *Sim {
	return &Sim{
		viewportW:   viewportW,
		viewportH:   viewportH,
		pageHeight:  pageHeight,
		byName:      make(map[string]*SimElement),
		pageVars:    make(map[string]string),
		pageMarkers: make(map[string]bool),
		now:         time.Unix(0, 0),
		frames:      make(map[int]func(time.Time)),
		timers:      make(map[int]*simTimer),
		visObs:      make(map[int]*simObserver),
		pointers:    make(map[int]func(float64, float64)),
		scrolls:     make(map[int]func(float64)),
		keys:        make(map[int]func(Key)),
	}
}

// SetReducedMotion sets the simulated reduced-motion preference.
func (s *Sim) SetReducedMotion(on bool) { s.reduced = on }

// SetTouchOnly sets the simulated hover capability.
func (s *Sim) SetTouchOnly(on bool) { s.touch = on }

// Add places a plain element on the page under the given role selector.
func (s *Sim) Add(selector string, r Rect) *SimElement {
	el := &SimElement{sim: s, name: selector, rect: r}
	s.byName[selector] = el
	return el
}

// AddSection places a named content section on the page.
func (s *Sim) AddSection(name string, r Rect) *SimElement {
	el := s.Add(name, r)
	s.sections = append(s.sections, el)
	return el
}

// AddReveal places an element marked for one-time reveal.
func (s *Sim) AddReveal(name string, r Rect) *SimElement {
	el := s.Add(name, r)
	s.reveals = append(s.reveals, el)
	return el
}

// AddFocusable nests a focusable child (a link, say) inside parent.
func (s *Sim) AddFocusable(parent *SimElement, name string, r Rect) *SimElement {
	el := &SimElement{sim: s, name: name, rect: r}
	s.byName[name] = el
	parent.focusables = append(parent.focusables, el)
	return el
}

// SetScroll moves the simulated scroll position and dispatches scroll
// handlers plus fresh visibility reports. Out-of-range offsets are delivered
// as-is; clamping is the consumer's problem, just like the real thing.
func (s *Sim) SetScroll(offset float64) {
	if s.scrollLocked {
		return
	}
	s.scroll = offset
	for _, fn := range s.scrolls {
		fn(offset)
	}
	s.reportVisibility()
}

// MovePointer dispatches a pointer position to registered handlers.
func (s *Sim) MovePointer(x, y float64) {
	for _, fn := range s.pointers {
		fn(x, y)
	}
}

// PressKey dispatches a key to registered handlers.
func (s *Sim) PressKey(k Key) {
	for _, fn := range s.keys {
		fn(k)
	}
}

// Activate simulates a click/tap on the element with the given selector.
func (s *Sim) Activate(selector string) {
	el, ok := s.byName[selector]
	if !ok {
		return
	}
	for _, fn := range el.activations {
		fn()
	}
}

// Step advances simulated time by n frames. Each frame fires timers that
// have come due, then every registered frame callback.
func (s *Sim) Step(n int) {
	for i := 0; i < n; i++ {
		s.now = s.now.Add(frameInterval)
		for id, t := range s.timers {
			if !t.due.After(s.now) {
				delete(s.timers, id)
				t.fn()
			}
		}
		for _, fn := range s.frames {
			fn(s.now)
		}
	}
}

// Now returns the current simulated time.
func (s *Sim) Now() time.Time { return s.now }

// PageVar reads back a published page-scoped hint.
func (s *Sim) PageVar(name string) (string, bool) {
	v, ok := s.pageVars[name]
	return v, ok
}

// PageMarker reads back a page-scoped state marker.
func (s *Sim) PageMarker(name string) bool { return s.pageMarkers[name] }

// ScrollLocked reports whether LockScroll is in effect.
func (s *Sim) ScrollLocked() bool { return s.scrollLocked }

// visibleFraction computes the vertical overlap between the element and the
// viewport as a proportion of the element's height.
func (s *Sim) visibleFraction(el *SimElement) float64 {
	if el.rect.Height <= 0 {
		return 0
	}
	top := el.rect.Top - s.scroll
	bottom := top + el.rect.Height
	visTop := top
	if visTop < 0 {
		visTop = 0
	}
	visBottom := bottom
	if visBottom > s.viewportH {
		visBottom = s.viewportH
	}
	if visBottom <= visTop {
		return 0
	}
	return (visBottom - visTop) / el.rect.Height
}

func (s *Sim) reportVisibility() {
	for _, obs := range s.visObs {
		obs.fn(s.visibleFraction(obs.el))
	}
}

// Document interface.

func (s *Sim) Find(selector string) (Element, bool) {
	el, ok := s.byName[selector]
	if !ok {
		return nil, false
	}
	return el, true
}

func (s *Sim) Sections() []Element {
	out := make([]Element, len(s.sections))
	for i, el := range s.sections {
		out[i] = el
	}
	return out
}

func (s *Sim) RevealTargets() []Element {
	out := make([]Element, len(s.reveals))
	for i, el := range s.reveals {
		out[i] = el
	}
	return out
}

func (s *Sim) Viewport() (w, h float64) { return s.viewportW, s.viewportH }
func (s *Sim) ScrollOffset() float64    { return s.scroll }
func (s *Sim) ScrollHeight() float64    { return s.pageHeight }

func (s *Sim) SetPageVar(name, value string)      { s.pageVars[name] = value }
func (s *Sim) SetPageMarker(name string, on bool) { s.pageMarkers[name] = on }

func (s *Sim) LockScroll()   { s.scrollLocked = true }
func (s *Sim) UnlockScroll() { s.scrollLocked = false }

func (s *Sim) Focused() (Element, bool) {
	if s.focused == nil {
		return nil, false
	}
	return s.focused, true
}

func (s *Sim) ReducedMotion() bool { return s.reduced }
func (s *Sim) TouchOnly() bool     { return s.touch }

func (s *Sim) ObserveVisibility(el Element, fn func(fraction float64)) (cancel func()) {
	sel, ok := el.(*SimElement)
	if !ok {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.visObs[id] = &simObserver{el: sel, fn: fn}
	// Observers get an initial report, like the real intersection machinery.
	fn(s.visibleFraction(sel))
	return func() { delete(s.visObs, id) }
}

func (s *Sim) OnPointerMove(fn func(x, y float64)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.pointers[id] = fn
	return func() { delete(s.pointers, id) }
}

func (s *Sim) OnScroll(fn func(offset float64)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.scrolls[id] = fn
	return func() { delete(s.scrolls, id) }
}

func (s *Sim) OnKey(fn func(k Key)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.keys[id] = fn
	return func() { delete(s.keys, id) }
}

func (s *Sim) OnActivate(el Element, fn func()) (cancel func()) {
	sel, ok := el.(*SimElement)
	if !ok {
		return func() {}
	}
	sel.activations = append(sel.activations, fn)
	idx := len(sel.activations) - 1
	return func() { sel.activations[idx] = func() {} }
}

// Scheduler interface.

func (s *Sim) OnFrame(fn func(now time.Time)) (stop func()) {
	id := s.nextID
	s.nextID++
	s.frames[id] = fn
	return func() { delete(s.frames, id) }
}

func (s *Sim) After(d time.Duration, fn func()) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.timers[id] = &simTimer{due: s.now.Add(d), fn: fn}
	return func() { delete(s.timers, id) }
}

// SimElement is an element on a Sim page.
type SimElement struct {
	sim  *Sim
	name string
	rect Rect

	vars        map[string]string
	markers     map[string]bool
	focusables  []*SimElement
	activations []func()
}

func (e *SimElement) Name() string { return e.name }
func (e *SimElement) Bounds() Rect { return e.rect }

func (e *SimElement) SetVar(name, value string) {
	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[name] = value
}

func (e *SimElement) SetMarker(name string, on bool) {
	if e.markers == nil {
		e.markers = make(map[string]bool)
	}
	e.markers[name] = on
}

func (e *SimElement) Focus() { e.sim.focused = e }

func (e *SimElement) Focusables() []Element {
	out := make([]Element, len(e.focusables))
	for i, el := range e.focusables {
		out[i] = el
	}
	return out
}

// Var reads back an element-scoped hint.
func (e *SimElement) Var(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Marker reads back an element-scoped state marker.
func (e *SimElement) Marker(name string) bool { return e.markers[name] }

// MoveTo relocates the element, feeding observers fresh visibility.
func (e *SimElement) MoveTo(r Rect) {
	e.rect = r
	e.sim.reportVisibility()
}
