package time

import (
	"context"
	"sync"
	"time"
)

// SteppingTimeProvider is a manual clock. Every call to Now advances it by
// step, so rows created one after another get strictly increasing timestamps.
type SteppingTimeProvider struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewSteppingTimeProvider creates a clock starting at start
func NewSteppingTimeProvider(start time.Time, step time.Duration) *SteppingTimeProvider {
	return &SteppingTimeProvider{now: start.UTC(), step: step}
}

// Now returns the current reading and advances the clock
func (p *SteppingTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	t := p.now
	p.now = p.now.Add(p.step)
	return t
}

// Peek returns the current reading without advancing
func (p *SteppingTimeProvider) Peek() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Advance moves the clock forward by d
func (p *SteppingTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

// Set moves the clock to t
func (p *SteppingTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	p.now = t.UTC()
	p.mu.Unlock()
}

// Since returns the clock reading minus t
func (p *SteppingTimeProvider) Since(t time.Time) time.Duration {
	return p.Peek().Sub(t)
}

// Until returns t minus the clock reading
func (p *SteppingTimeProvider) Until(t time.Time) time.Duration {
	return t.Sub(p.Peek())
}

// WithTimeout uses a real timer; the manual clock does not drive deadlines
func (p *SteppingTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
