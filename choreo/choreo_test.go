package choreo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dolly"
	"github.com/teranos/dolly/host"
)

// newScriptPage builds the simulated marketing page the sessions run
// against: a 1000x600 viewport over a 3000px document with three
// sections and a nav drawer.
func newScriptPage() (*host.Sim, *dolly.Controller) {
	sim := host.NewSim(1000, 600, 3000)

	sim.Add("header", host.Rect{Top: 0, Left: 0, Width: 1000, Height: 80})
	sim.Add("hero", host.Rect{Top: 80, Left: 0, Width: 1000, Height: 470})
	sim.Add("scroll-cue", host.Rect{Top: 550, Left: 0, Width: 1000, Height: 40})

	sim.AddSection("intro", host.Rect{Top: 600, Left: 0, Width: 1000, Height: 800})
	sim.AddSection("product", host.Rect{Top: 1400, Left: 0, Width: 1000, Height: 800})
	sim.AddSection("story", host.Rect{Top: 2200, Left: 0, Width: 1000, Height: 800})

	sim.Add("footer", host.Rect{Top: 2800, Left: 0, Width: 1000, Height: 200})

	sim.Add("nav-toggle", host.Rect{Top: 20, Left: 940, Width: 40, Height: 40})
	menu := sim.Add("nav-menu", host.Rect{Top: 0, Left: 0, Width: 1000, Height: 600})
	sim.AddFocusable(menu, "nav-link-intro", host.Rect{Top: 100, Left: 100, Width: 200, Height: 40})
	sim.AddFocusable(menu, "nav-link-product", host.Rect{Top: 160, Left: 100, Width: 200, Height: 40})
	sim.AddFocusable(menu, "nav-link-story", host.Rect{Top: 220, Left: 100, Width: 200, Height: 40})

	return sim, dolly.New(sim, sim, dolly.DefaultConfig())
}

func TestSessionFluentFlow(t *testing.T) {
	sim, ctrl := newScriptPage()

	result := New(t, sim, ctrl).
		Start().
		ScrollTo(1500).
		StepFrames(1).
		AssertPageVar(dolly.VarScrollProgress, "0.6250").
		AssertPageMarker(dolly.MarkerHeaderCompact, true).
		AssertActiveSection("product").
		MovePointer(800, 400).
		StepFrames(120).
		AssertPageVarBetween(dolly.VarGlowX, 799, 801).
		AssertPageVarBetween(dolly.VarGlowY, 399, 401).
		Stop()

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Empty(t, result.ErrorMessage)
	assert.NoError(t, result.Error)
	assert.NotEmpty(t, result.Actions)
	// The initial snapshot plus one per successful step.
	assert.Len(t, result.Snapshots, len(result.Actions)+1)
}

func TestSessionDrivesNavDrawer(t *testing.T) {
	sim, ctrl := newScriptPage()

	result := New(t, sim, ctrl).
		Start().
		Activate("nav-toggle").
		AssertNavOpen(true).
		AssertPageMarker(dolly.MarkerNavOpen, true).
		StepFrames(6).
		AssertFocused("nav-link-intro").
		PressTab().
		AssertFocused("nav-link-product").
		PressShiftTab().
		AssertFocused("nav-link-intro").
		PressEscape().
		AssertNavOpen(false).
		AssertFocused("nav-toggle").
		Stop()

	assert.True(t, result.Success)
	last := result.Snapshots[len(result.Snapshots)-1]
	assert.False(t, last.NavOpen)
}

func TestSessionCollectsFailuresWithoutFailingTest(t *testing.T) {
	sim, ctrl := newScriptPage()

	session := NewWithConfig(t, sim, ctrl, Config{
		CaptureSnapshots: true,
		AutoReportErrors: false,
	})

	session.Start().
		AssertActiveSection("story"). // nothing has scrolled yet
		AssertNavOpen(false)

	assert.True(t, session.HasFailed())
	require.Error(t, session.Err())

	result := session.Stop()
	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "assertion")
	assert.Error(t, result.Error)
}

func TestSessionMissingPageVarFails(t *testing.T) {
	sim, ctrl := newScriptPage()

	result := NewWithConfig(t, sim, ctrl, Config{AutoReportErrors: false}).
		Start().
		AssertPageVar("--never-published", "1").
		Stop()

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "never published")
}

func TestSessionStopWithoutStart(t *testing.T) {
	sim, ctrl := newScriptPage()

	result := New(t, sim, ctrl).Stop()
	assert.False(t, result.Success)
	assert.Equal(t, "session was never started", result.ErrorMessage)
}

func TestSessionStartTwiceIsNoOp(t *testing.T) {
	sim, ctrl := newScriptPage()

	result := New(t, sim, ctrl).
		Start().
		Start().
		StepFrames(1).
		Stop()

	assert.True(t, result.Success)
}

func TestSessionSnapshotsDisabled(t *testing.T) {
	sim, ctrl := newScriptPage()

	result := NewWithConfig(t, sim, ctrl, Config{AutoReportErrors: true}).
		Start().
		ScrollTo(700).
		StepFrames(2).
		Stop()

	assert.True(t, result.Success)
	assert.Empty(t, result.Snapshots)
	assert.Len(t, result.Actions, 2)
}

func TestSessionActionTypes(t *testing.T) {
	sim, ctrl := newScriptPage()

	result := New(t, sim, ctrl).
		Start().
		ScrollTo(700).
		MovePointer(100, 100).
		StepFrames(3).
		Activate("nav-toggle").
		PressEscape().
		Stop()

	require.True(t, result.Success)
	var types []string
	for _, a := range result.Actions {
		types = append(types, a.Type)
	}
	assert.Equal(t, []string{"scroll", "pointer", "frames", "activate", "keypress"}, types)
}
