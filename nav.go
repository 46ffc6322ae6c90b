package dolly

import "github.com/teranos/dolly/host"

// navDrawer is the mobile navigation state machine: closed or open,
// nothing in between. A page without both the toggle control and the menu
// simply has no drawer.
type navDrawer struct {
	c      *Controller
	toggle host.Element
	menu   host.Element

	open        bool
	cancelFocus func()
	cancels     []func()
}

func newNavDrawer(c *Controller) *navDrawer {
	toggle, ok := c.doc.Find("nav-toggle")
	if !ok {
		return nil
	}
	menu, ok := c.doc.Find("nav-menu")
	if !ok {
		return nil
	}
	n := &navDrawer{c: c, toggle: toggle, menu: menu}
	n.cancels = append(n.cancels, c.doc.OnActivate(toggle, n.toggleActivated))
	// Any in-menu link activation closes the drawer.
	for _, link := range menu.Focusables() {
		n.cancels = append(n.cancels, c.doc.OnActivate(link, n.linkActivated))
	}
	return n
}

func (n *navDrawer) toggleActivated() {
	if n.open {
		n.close()
	} else {
		n.openDrawer()
	}
}

func (n *navDrawer) linkActivated() {
	if n.open {
		n.close()
	}
}

// openDrawer locks page scroll, flips the expanded markers and moves focus
// to the first focusable item after a short delay, so the opening
// transition has somewhere to land.
func (n *navDrawer) openDrawer() {
	n.open = true
	n.c.doc.LockScroll()
	n.toggle.SetMarker(MarkerNavExpanded, true)
	n.c.doc.SetPageMarker(MarkerNavOpen, true)
	n.cancelFocus = n.c.sched.After(n.c.cfg.NavFocusDelay, func() {
		if items := n.menu.Focusables(); len(items) > 0 {
			items[0].Focus()
		}
	})
}

// close restores page scroll and returns focus to the toggle control.
func (n *navDrawer) close() {
	n.open = false
	if n.cancelFocus != nil {
		n.cancelFocus()
		n.cancelFocus = nil
	}
	n.c.doc.UnlockScroll()
	n.toggle.SetMarker(MarkerNavExpanded, false)
	n.c.doc.SetPageMarker(MarkerNavOpen, false)
	n.toggle.Focus()
}

// handleKey implements escape-to-close and the focus trap: tabbing forward
// past the last focusable wraps to the first, backward past the first
// wraps to the last. Keys are ignored while closed.
func (n *navDrawer) handleKey(k host.Key) {
	if !n.open {
		return
	}
	switch k {
	case host.KeyEscape:
		n.close()
	case host.KeyTab:
		n.moveFocus(1)
	case host.KeyShiftTab:
		n.moveFocus(-1)
	}
}

func (n *navDrawer) moveFocus(dir int) {
	items := n.menu.Focusables()
	if len(items) == 0 {
		return
	}
	idx := 0
	if cur, ok := n.c.doc.Focused(); ok {
		for i, it := range items {
			if it.Name() == cur.Name() {
				idx = (i + dir + len(items)) % len(items)
				break
			}
		}
	}
	items[idx].Focus()
}

func (n *navDrawer) teardown() {
	for _, cancel := range n.cancels {
		cancel()
	}
	n.cancels = nil
	if n.cancelFocus != nil {
		n.cancelFocus()
		n.cancelFocus = nil
	}
}
