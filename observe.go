package dolly

import "github.com/teranos/dolly/host"

// subscription is one (element, threshold, callback) registration in the
// controller's arena. fireOnce records unsubscribe after the first time the
// fraction crosses up through the threshold; the rest fire on every
// crossing, in both directions.
type subscription struct {
	id         int
	el         host.Element
	threshold  float64
	fireOnce   bool
	above      bool
	fn         func(above bool)
	cancelHost func()
}

// subscribe registers a visibility subscription and returns its arena key.
func (c *Controller) subscribe(el host.Element, threshold float64, fireOnce bool, fn func(above bool)) int {
	id := c.nextID
	c.nextID++
	sub := &subscription{
		id:        id,
		el:        el,
		threshold: threshold,
		fireOnce:  fireOnce,
		fn:        fn,
	}
	c.subs[id] = sub
	sub.cancelHost = c.doc.ObserveVisibility(el, func(fraction float64) {
		c.report(sub, fraction)
	})
	// The host reports once at registration time; a fire-once subscription
	// can be gone before cancelHost is even assigned.
	if c.subs[id] != sub {
		sub.cancelHost()
	}
	return id
}

// report applies threshold-crossing semantics to a raw visibility sample.
func (c *Controller) report(sub *subscription, fraction float64) {
	if c.subs[sub.id] != sub {
		// Already unsubscribed; a late report from the host.
		return
	}
	above := fraction >= sub.threshold
	if above == sub.above {
		return
	}
	sub.above = above
	sub.fn(above)
	if sub.fireOnce && above {
		c.unsubscribe(sub.id)
	}
}

func (c *Controller) unsubscribe(id int) {
	sub, ok := c.subs[id]
	if !ok {
		return
	}
	delete(c.subs, id)
	if sub.cancelHost != nil {
		sub.cancelHost()
	}
}

// attachObservers wires the three observation families from Start.
//
// Under reduced motion, reveal targets are shown immediately and their
// observers never attach; section and footer tracking stays on because
// navigation state is not a motion effect.
func (c *Controller) attachObservers() {
	if c.reduced {
		for _, el := range c.doc.RevealTargets() {
			el.SetMarker(MarkerVisible, true)
		}
	} else {
		for _, el := range c.doc.RevealTargets() {
			el := el
			c.subscribe(el, c.cfg.RevealThreshold, true, func(above bool) {
				el.SetMarker(MarkerVisible, true)
			})
		}
	}

	for _, sec := range c.doc.Sections() {
		sec := sec
		c.subscribe(sec, c.cfg.ActiveThreshold, false, func(above bool) {
			if above {
				c.setActiveSection(sec)
			}
		})
	}

	if footer, ok := c.doc.Find("footer"); ok {
		c.subscribe(footer, c.cfg.FooterThreshold, false, func(above bool) {
			c.doc.SetPageMarker(MarkerFooterVisible, above)
		})
	}
}

// setActiveSection marks one section active and every sibling inactive.
// At most one section carries the marker at any time.
func (c *Controller) setActiveSection(target host.Element) {
	for _, sec := range c.doc.Sections() {
		sec.SetMarker(MarkerActive, sec.Name() == target.Name())
	}
	c.activeSection = target.Name()
}
