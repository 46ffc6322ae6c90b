package dolly

import (
	"github.com/teranos/dolly/host"
)

// newTestPage builds the canonical test page: 1000x600 viewport over a
// 3000px document with three sections, two reveal cards, a footer and a
// nav drawer.
//
//	header      0..80
//	hero       80..600
//	intro     600..1400   (card-a at 700..900)
//	product  1400..2200   (card-b at 1500..1700)
//	story    2200..3000
//	footer   2800..3000
func newTestPage() (*host.Sim, *Controller) {
	sim := host.NewSim(1000, 600, 3000)
	sim.Add("header", host.Rect{Top: 0, Left: 0, Width: 1000, Height: 80})
	sim.Add("hero", host.Rect{Top: 80, Left: 0, Width: 1000, Height: 470})
	sim.Add("scroll-cue", host.Rect{Top: 550, Left: 460, Width: 80, Height: 40})
	sim.AddSection("intro", host.Rect{Top: 600, Left: 0, Width: 1000, Height: 800})
	sim.AddSection("product", host.Rect{Top: 1400, Left: 0, Width: 1000, Height: 800})
	sim.AddSection("story", host.Rect{Top: 2200, Left: 0, Width: 1000, Height: 800})
	sim.AddReveal("card-a", host.Rect{Top: 700, Left: 100, Width: 300, Height: 200})
	sim.AddReveal("card-b", host.Rect{Top: 1500, Left: 100, Width: 300, Height: 200})
	sim.Add("footer", host.Rect{Top: 2800, Left: 0, Width: 1000, Height: 200})
	sim.Add("nav-toggle", host.Rect{Top: 16, Left: 930, Width: 48, Height: 48})
	menu := sim.Add("nav-menu", host.Rect{Top: 0, Left: 600, Width: 400, Height: 600})
	sim.AddFocusable(menu, "nav-link-intro", host.Rect{Top: 120, Left: 640, Width: 320, Height: 48})
	sim.AddFocusable(menu, "nav-link-product", host.Rect{Top: 180, Left: 640, Width: 320, Height: 48})
	sim.AddFocusable(menu, "nav-link-story", host.Rect{Top: 240, Left: 640, Width: 320, Height: 48})

	return sim, New(sim, sim, DefaultConfig())
}

// element resolves a selector the test knows exists.
func element(sim *host.Sim, selector string) *host.SimElement {
	el, ok := sim.Find(selector)
	if !ok {
		panic("test page is missing " + selector)
	}
	return el.(*host.SimElement)
}
