package host

import (
	"sync"
	"time"
)

// TickScheduler is a real-time Scheduler driven by a fixed-interval ticker.
//
// It suits hosts that pump their whole document on the frame goroutine:
// frame callbacks run on a single goroutine owned by the scheduler, one tick
// at a time, so controller state never sees concurrent access as long as
// input is marshalled onto the same goroutine via Do.
type TickScheduler struct {
	interval time.Duration

	mu     sync.Mutex
	nextID int
	frames map[int]func(now time.Time)
	work   chan func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewTickScheduler creates a scheduler ticking at the given interval and
// starts its loop. Interval values <= 0 fall back to a 60Hz-ish default.
func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = frameInterval
	}
	ts := &TickScheduler{
		interval: interval,
		frames:   make(map[int]func(time.Time)),
		work:     make(chan func(), 64),
		stopChan: make(chan struct{}),
	}
	ts.wg.Add(1)
	go ts.loop()
	return ts
}

func (ts *TickScheduler) loop() {
	defer ts.wg.Done()
	ticker := time.NewTicker(ts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ts.stopChan:
			return
		case fn := <-ts.work:
			fn()
		case now := <-ticker.C:
			ts.mu.Lock()
			fns := make([]func(time.Time), 0, len(ts.frames))
			for _, fn := range ts.frames {
				fns = append(fns, fn)
			}
			ts.mu.Unlock()
			for _, fn := range fns {
				fn(now)
			}
		}
	}
}

// OnFrame registers fn to run every tick until stop is called.
func (ts *TickScheduler) OnFrame(fn func(now time.Time)) (stop func()) {
	ts.mu.Lock()
	id := ts.nextID
	ts.nextID++
	ts.frames[id] = fn
	ts.mu.Unlock()
	return func() {
		ts.mu.Lock()
		delete(ts.frames, id)
		ts.mu.Unlock()
	}
}

// After runs fn on the frame goroutine once d elapses, unless cancelled.
func (ts *TickScheduler) After(d time.Duration, fn func()) (cancel func()) {
	var cancelled sync.Once
	done := make(chan struct{})
	timer := time.AfterFunc(d, func() {
		select {
		case <-done:
		case <-ts.stopChan:
		case ts.work <- fn:
		}
	})
	return func() {
		cancelled.Do(func() {
			timer.Stop()
			close(done)
		})
	}
}

// Do marshals fn onto the frame goroutine. It is how external events reach
// controller state without racing the loop.
func (ts *TickScheduler) Do(fn func()) {
	select {
	case <-ts.stopChan:
	case ts.work <- fn:
	}
}

// Stop tears the loop down. Idempotent; pending callbacks are dropped.
func (ts *TickScheduler) Stop() {
	ts.stopOnce.Do(func() { close(ts.stopChan) })
	ts.wg.Wait()
}
