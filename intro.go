package dolly

import (
	"time"

	"github.com/teranos/dolly/host"
)

// introSequencer plays the one-shot page-load reveal: header, then hero,
// then scroll cue, each gated by its configured delay. Reduced motion
// shows all three instantly. The sequence never replays within a page
// lifetime.
type introSequencer struct {
	c       *Controller
	played  bool
	cancels []func()
}

func newIntroSequencer(c *Controller) *introSequencer {
	return &introSequencer{c: c}
}

func (s *introSequencer) play() {
	if s.played {
		return
	}
	s.played = true

	stages := []struct {
		selector string
		delay    time.Duration
	}{
		{"header", s.c.cfg.IntroHeaderDelay},
		{"hero", s.c.cfg.IntroHeroDelay},
		{"scroll-cue", s.c.cfg.IntroCueDelay},
	}

	for _, st := range stages {
		el, ok := s.c.doc.Find(st.selector)
		if !ok {
			continue
		}
		if s.c.reduced {
			el.SetMarker(MarkerVisible, true)
			continue
		}
		s.reveal(el, st.delay)
	}
}

func (s *introSequencer) reveal(el host.Element, delay time.Duration) {
	s.cancels = append(s.cancels, s.c.sched.After(delay, func() {
		el.SetMarker(MarkerVisible, true)
	}))
}

func (s *introSequencer) teardown() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}
