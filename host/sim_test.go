package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleFraction(t *testing.T) {
	sim := NewSim(1000, 600, 3000)
	el := sim.Add("block", Rect{Top: 800, Left: 0, Width: 1000, Height: 400})

	var got float64
	sim.ObserveVisibility(el, func(fraction float64) { got = fraction })
	assert.Equal(t, 0.0, got, "initial report, element below the fold")

	sim.SetScroll(600) // viewport 600..1200 overlaps 800..1200
	assert.Equal(t, 1.0, got)

	sim.SetScroll(1000) // viewport 1000..1600 overlaps 1000..1200
	assert.Equal(t, 0.5, got)

	sim.SetScroll(2000)
	assert.Equal(t, 0.0, got)
}

func TestObserverCancel(t *testing.T) {
	sim := NewSim(1000, 600, 3000)
	el := sim.Add("block", Rect{Top: 0, Left: 0, Width: 1000, Height: 400})

	calls := 0
	cancel := sim.ObserveVisibility(el, func(float64) { calls++ })
	require.Equal(t, 1, calls, "registration delivers an initial report")

	cancel()
	sim.SetScroll(100)
	assert.Equal(t, 1, calls, "no reports after cancel")
}

func TestTimersFireInStepOrder(t *testing.T) {
	sim := NewSim(1000, 600, 3000)

	var fired []string
	sim.After(20*time.Millisecond, func() { fired = append(fired, "early") })
	sim.After(100*time.Millisecond, func() { fired = append(fired, "late") })
	cancel := sim.After(50*time.Millisecond, func() { fired = append(fired, "cancelled") })
	cancel()

	sim.Step(2) // 32ms
	assert.Equal(t, []string{"early"}, fired)

	sim.Step(5) // 112ms
	assert.Equal(t, []string{"early", "late"}, fired)
}

func TestFrameCallbacksStop(t *testing.T) {
	sim := NewSim(1000, 600, 3000)

	frames := 0
	stop := sim.OnFrame(func(time.Time) { frames++ })
	sim.Step(3)
	require.Equal(t, 3, frames)

	stop()
	sim.Step(3)
	assert.Equal(t, 3, frames)
}

func TestScrollLockBlocksScrolling(t *testing.T) {
	sim := NewSim(1000, 600, 3000)
	sim.LockScroll()
	sim.SetScroll(500)
	assert.Equal(t, 0.0, sim.ScrollOffset())

	sim.UnlockScroll()
	sim.SetScroll(500)
	assert.Equal(t, 500.0, sim.ScrollOffset())
}

func TestFocusablesAndFocus(t *testing.T) {
	sim := NewSim(1000, 600, 3000)
	menu := sim.Add("menu", Rect{Top: 0, Left: 0, Width: 400, Height: 600})
	a := sim.AddFocusable(menu, "a", Rect{Top: 10, Left: 0, Width: 400, Height: 40})
	sim.AddFocusable(menu, "b", Rect{Top: 60, Left: 0, Width: 400, Height: 40})

	_, ok := sim.Focused()
	assert.False(t, ok)

	a.Focus()
	focused, ok := sim.Focused()
	require.True(t, ok)
	assert.Equal(t, "a", focused.Name())
	assert.Len(t, menu.Focusables(), 2)
}
