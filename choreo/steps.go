package choreo

import (
	"fmt"
	"strconv"

	"github.com/teranos/dolly/host"
)

// ScrollTo moves the simulated scroll position to the given offset.
//
// Offsets outside the scrollable range are delivered as-is; the controller
// is expected to clamp what it derives from them.
func (s *Session) ScrollTo(offset float64) *Session {
	s.sim.SetScroll(offset)
	s.recordAction("scroll", offset)
	return s
}

// MovePointer dispatches a pointer sample at the given page coordinates.
func (s *Session) MovePointer(x, y float64) *Session {
	s.sim.MovePointer(x, y)
	s.recordAction("pointer", fmt.Sprintf("%.0f,%.0f", x, y))
	return s
}

// StepFrames advances the simulated clock by n display frames, letting the
// motion loop interpolate.
func (s *Session) StepFrames(n int) *Session {
	s.sim.Step(n)
	s.recordAction("frames", n)
	return s
}

// PressEscape dispatches an escape key press.
func (s *Session) PressEscape() *Session {
	s.sim.PressKey(host.KeyEscape)
	s.recordAction("keypress", "escape")
	return s
}

// PressTab dispatches a forward tab.
func (s *Session) PressTab() *Session {
	s.sim.PressKey(host.KeyTab)
	s.recordAction("keypress", "tab")
	return s
}

// PressShiftTab dispatches a backward tab.
func (s *Session) PressShiftTab() *Session {
	s.sim.PressKey(host.KeyShiftTab)
	s.recordAction("keypress", "shift-tab")
	return s
}

// Activate simulates a click/tap on the element with the given selector.
func (s *Session) Activate(selector string) *Session {
	s.sim.Activate(selector)
	s.recordAction("activate", selector)
	return s
}

// AssertPageVar verifies a page-scoped hint's exact published value.
func (s *Session) AssertPageVar(name, want string) *Session {
	got, ok := s.sim.PageVar(name)
	if !ok {
		s.recordError(&stepError{"assertion", fmt.Sprintf("page var %s was never published", name)})
		return s
	}
	if got != want {
		s.recordError(&stepError{"assertion", fmt.Sprintf("page var %s = %s, want %s", name, got, want)})
		return s
	}
	s.recordAction("assertion", fmt.Sprintf("%s=%s", name, want))
	return s
}

// AssertPageVarBetween verifies a numeric page hint lies in [lo, hi].
func (s *Session) AssertPageVarBetween(name string, lo, hi float64) *Session {
	got, ok := s.pageVarFloat(name)
	if !ok {
		return s
	}
	if got < lo || got > hi {
		s.recordError(&stepError{"assertion", fmt.Sprintf("page var %s = %v, want within [%v, %v]", name, got, lo, hi)})
		return s
	}
	s.recordAction("assertion", fmt.Sprintf("%s in [%v,%v]", name, lo, hi))
	return s
}

// AssertPageMarker verifies a page-scoped state marker.
func (s *Session) AssertPageMarker(name string, want bool) *Session {
	if got := s.sim.PageMarker(name); got != want {
		s.recordError(&stepError{"assertion", fmt.Sprintf("page marker %s = %t, want %t", name, got, want)})
		return s
	}
	s.recordAction("assertion", fmt.Sprintf("marker %s=%t", name, want))
	return s
}

// AssertActiveSection verifies which section currently carries the active
// marker.
func (s *Session) AssertActiveSection(name string) *Session {
	if got := s.ctrl.ActiveSection(); got != name {
		s.recordError(&stepError{"assertion", fmt.Sprintf("active section = %q, want %q", got, name)})
		return s
	}
	s.recordAction("assertion", "active="+name)
	return s
}

// AssertNavOpen verifies the drawer state.
func (s *Session) AssertNavOpen(want bool) *Session {
	if got := s.ctrl.NavOpen(); got != want {
		s.recordError(&stepError{"assertion", fmt.Sprintf("nav open = %t, want %t", got, want)})
		return s
	}
	s.recordAction("assertion", fmt.Sprintf("nav=%t", want))
	return s
}

// AssertFocused verifies which element holds keyboard focus.
func (s *Session) AssertFocused(selector string) *Session {
	el, ok := s.sim.Focused()
	if !ok {
		s.recordError(&stepError{"assertion", "nothing is focused"})
		return s
	}
	if el.Name() != selector {
		s.recordError(&stepError{"assertion", fmt.Sprintf("focused = %q, want %q", el.Name(), selector)})
		return s
	}
	s.recordAction("assertion", "focused="+selector)
	return s
}

func (s *Session) pageVarFloat(name string) (float64, bool) {
	raw, ok := s.sim.PageVar(name)
	if !ok {
		s.recordError(&stepError{"assertion", fmt.Sprintf("page var %s was never published", name)})
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.recordError(&stepError{"assertion", fmt.Sprintf("page var %s = %q is not numeric", name, raw)})
		return 0, false
	}
	return v, true
}
