package systems

import (
	"context"
	"sync"
	"time"
)

// Renderer consumes one snapshot per loop tick.
type Renderer interface {
	Render(f Frame)
}

// Loop runs a session headless: each tick updates the session with the
// fixed step and renders a snapshot.
type Loop struct {
	session  *Session
	renderer Renderer
	step     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop computes the tick interval once from tps.
func NewLoop(s *Session, r Renderer, tps int) *Loop {
	if tps <= 0 {
		tps = 60
	}
	return &Loop{
		session:  s,
		renderer: r,
		step:     time.Second / time.Duration(tps),
	}
}

// Start launches the loop goroutine. It returns immediately; calling Start
// on a running loop does nothing.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil {
		return
	}
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go l.run(ctx, l.done)
}

// Stop cancels the loop and waits for it to return.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if done == nil {
		return
	}
	cancel()
	<-done
}

// Done is closed when the loop has stopped, either by Stop or because the
// session was exited. It is nil before Start.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Do runs fn with exclusive access to the session, between ticks.
func (l *Loop) Do(fn func(s *Session)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.session)
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.step)
	defer ticker.Stop()

	dt := l.step.Seconds()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		l.mu.Lock()
		l.session.Update(dt)
		frame := l.session.Snapshot()
		l.mu.Unlock()

		if l.renderer != nil {
			l.renderer.Render(frame)
		}
		if frame.Exited {
			return
		}
	}
}
