// Package choreo drives a dolly.Controller through scripted interaction
// sequences in tests. It provides a fluent API for simulating scrolling,
// pointer travel and key presses against a host.Sim, stepping frames
// deterministically, and asserting the published render hints.
//
// Errors are collected on the session and returned in the final Result
// rather than immediately failing the test, so a whole sequence can be
// inspected after something goes wrong.
//
// Example usage:
//
//	result := choreo.New(t, sim, ctrl).
//		Start().
//		ScrollTo(800).
//		StepFrames(12).
//		AssertActiveSection("product").
//		AssertPageVarBetween(dolly.VarScrollProgress, 0.3, 0.5).
//		Stop()
//
//	assert.True(t, result.Success)
package choreo

import (
	"fmt"
	"testing"
	"time"

	"github.com/teranos/dolly"
	"github.com/teranos/dolly/host"
)

// Session orchestrates one scripted run of a controller on a simulated
// page. Construct with New, call Start before any steps and Stop to get
// the Result.
type Session struct {
	t    *testing.T
	sim  *host.Sim
	ctrl *dolly.Controller

	actions   []Action
	snapshots []Snapshot

	lastErr error
	failed  bool

	config  Config
	started bool
}

// Action records a single step taken during the session.
type Action struct {
	Timestamp time.Time
	Type      string // "scroll", "pointer", "keypress", "activate", "frames", "assertion"
	Details   any
}

// Snapshot captures the published page state at a moment in the session.
type Snapshot struct {
	Timestamp     time.Time
	PageVars      map[string]string
	ActiveSection string
	NavOpen       bool
}

// Result is the complete outcome of a session: every action, every
// snapshot, and whether the script ran clean.
type Result struct {
	Actions      []Action
	Snapshots    []Snapshot
	Success      bool
	Duration     time.Duration
	ErrorMessage string
	Error        error
}

// Config tunes session behavior.
type Config struct {
	// CaptureSnapshots enables the automatic snapshot after each step.
	CaptureSnapshots bool
	// AutoReportErrors forwards recorded errors to t.Error as they occur.
	// Disable when a test deliberately exercises failure paths.
	AutoReportErrors bool
}

// DefaultConfig returns the session defaults: snapshots on, errors
// reported to the test as they happen.
func DefaultConfig() Config {
	return Config{
		CaptureSnapshots: true,
		AutoReportErrors: true,
	}
}

// stepError is a structured session failure.
type stepError struct {
	Type    string // "assertion" or "script"
	Message string
}

func (e *stepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// New creates a session with default configuration.
func New(t *testing.T, sim *host.Sim, ctrl *dolly.Controller) *Session {
	return NewWithConfig(t, sim, ctrl, DefaultConfig())
}

// NewWithConfig creates a session with custom configuration.
func NewWithConfig(t *testing.T, sim *host.Sim, ctrl *dolly.Controller, config Config) *Session {
	return &Session{
		t:      t,
		sim:    sim,
		ctrl:   ctrl,
		config: config,
	}
}

// Start begins the session: the controller attaches to the page and the
// initial snapshot is captured. Starting twice is a no-op.
func (s *Session) Start() *Session {
	if s.started {
		return s
	}
	s.started = true
	s.ctrl.Start()
	s.captureSnapshot()
	return s
}

// Stop ends the session, stops the controller and returns the Result.
func (s *Session) Stop() *Result {
	if !s.started {
		return &Result{
			Success:      false,
			ErrorMessage: "session was never started",
		}
	}

	startTime := time.Now()
	if len(s.actions) > 0 {
		startTime = s.actions[0].Timestamp
	}

	s.ctrl.Stop()

	errorMessage := ""
	if s.lastErr != nil {
		errorMessage = s.lastErr.Error()
	}
	return &Result{
		Actions:      s.actions,
		Snapshots:    s.snapshots,
		Success:      !s.failed,
		Duration:     time.Since(startTime),
		ErrorMessage: errorMessage,
		Error:        s.lastErr,
	}
}

// HasFailed reports whether any step has recorded an error so far.
func (s *Session) HasFailed() bool { return s.failed }

// Err returns the last error recorded, or nil.
func (s *Session) Err() error { return s.lastErr }

func (s *Session) recordError(err error) {
	s.lastErr = err
	s.failed = true
	if s.t != nil && s.config.AutoReportErrors {
		s.t.Helper()
		s.t.Error(err)
	}
}

func (s *Session) recordAction(actionType string, details any) {
	s.actions = append(s.actions, Action{
		Timestamp: time.Now(),
		Type:      actionType,
		Details:   details,
	})
	s.captureSnapshot()
}

func (s *Session) captureSnapshot() {
	if !s.config.CaptureSnapshots {
		return
	}
	vars := make(map[string]string)
	for _, name := range []string{
		dolly.VarScrollProgress,
		dolly.VarParallaxNear,
		dolly.VarParallaxFar,
		dolly.VarGlowX,
		dolly.VarGlowY,
		dolly.VarGlowVelocity,
	} {
		if v, ok := s.sim.PageVar(name); ok {
			vars[name] = v
		}
	}
	s.snapshots = append(s.snapshots, Snapshot{
		Timestamp:     time.Now(),
		PageVars:      vars,
		ActiveSection: s.ctrl.ActiveSection(),
		NavOpen:       s.ctrl.NavOpen(),
	})
}
