// Package retry implements the bounded, exponential-backoff retry policy
// that spec.md §9 recommends over the original's two competing styles
// (unbounded retry-until-ok, and an uncoordinated bounded loop). The
// shape — a sleep-time state that attacks on failure and decays on
// success, bounded by a configurable ceiling — is modelled directly on
// the teacher's lib/pacer package, renamed and narrowed to this domain:
// WatFS retries a single shared gRPC channel rather than managing a pool
// of backend connections, so there is no connection-token dispenser here.
package retry

import (
	"context"
	"sync"
	"time"
)

// State is the pacer's mutable backoff state.
type State struct {
	SleepTime          time.Duration
	ConsecutiveRetries int
}

// Calculator computes the next sleep duration from the current state.
type Calculator interface {
	Calculate(state State) time.Duration
}

// Default is the attack/decay calculator: each retry multiplies the
// sleep time towards maxSleep (attack), each success relaxes it back
// towards minSleep (decay).
type Default struct {
	minSleep      time.Duration
	maxSleep      time.Duration
	decayConstant uint
	attackConstant uint
}

// NewDefault creates a Default calculator with the given options applied
// over sensible defaults (10ms min, 2s max, decay 2, attack 1).
func NewDefault(opts ...Option) *Default {
	d := &Default{
		minSleep:       10 * time.Millisecond,
		maxSleep:       2 * time.Second,
		decayConstant:  2,
		attackConstant: 1,
	}
	for _, opt := range opts {
		opt(d, nil)
	}
	return d
}

// Calculate implements Calculator.
func (d *Default) Calculate(state State) time.Duration {
	if state.ConsecutiveRetries == 0 {
		// A successful call: decay the sleep time towards minSleep.
		sleepTime := state.SleepTime >> d.decayConstant
		if sleepTime < d.minSleep {
			sleepTime = d.minSleep
		}
		return sleepTime
	}
	// A failed call: attack the sleep time towards maxSleep.
	sleepTime := state.SleepTime << d.attackConstant
	if sleepTime < d.minSleep {
		sleepTime = d.minSleep
	}
	if sleepTime > d.maxSleep {
		sleepTime = d.maxSleep
	}
	return sleepTime
}

// Option configures a Pacer or, for the calculator-only options, a
// Default calculator constructed via NewDefault.
type Option func(*Default, *Pacer)

// MinSleep sets the minimum backoff sleep.
func MinSleep(t time.Duration) Option {
	return func(d *Default, p *Pacer) {
		if d != nil {
			d.minSleep = t
		}
	}
}

// MaxSleep sets the maximum backoff sleep.
func MaxSleep(t time.Duration) Option {
	return func(d *Default, p *Pacer) {
		if d != nil {
			d.maxSleep = t
		}
	}
}

// DecayConstant sets how quickly the sleep time relaxes after a success.
func DecayConstant(c uint) Option {
	return func(d *Default, p *Pacer) {
		if d != nil {
			d.decayConstant = c
		}
	}
}

// AttackConstant sets how quickly the sleep time grows after a failure.
func AttackConstant(c uint) Option {
	return func(d *Default, p *Pacer) {
		if d != nil {
			d.attackConstant = c
		}
	}
}

// Attempts bounds the number of attempts Pacer.Call will make before
// giving up, the retry_limit of spec.md §4.4 (default 1000).
func Attempts(n int) Option {
	return func(d *Default, p *Pacer) {
		if p != nil {
			p.attempts = n
		}
	}
}

// CalculatorOption overrides the calculator used by a Pacer.
func CalculatorOption(c Calculator) Option {
	return func(d *Default, p *Pacer) {
		if p != nil {
			p.calculator = c
		}
	}
}

// ErrRetriesExceeded is returned by Call when the attempt budget is
// exhausted without a non-retryable outcome.
type ErrRetriesExceeded struct {
	Last error
}

func (e *ErrRetriesExceeded) Error() string {
	if e.Last == nil {
		return "retry: attempts exceeded"
	}
	return "retry: attempts exceeded: " + e.Last.Error()
}

func (e *ErrRetriesExceeded) Unwrap() error { return e.Last }

// Pacer paces and bounds retries of a fallible operation: each attempt's
// caller reports whether the failure is retryable, and Pacer sleeps for
// an amount computed by its Calculator between attempts.
type Pacer struct {
	mu         sync.Mutex
	calculator Calculator
	state      State
	attempts   int
}

// New creates a Pacer with the given options. The default attempt
// budget is 1000, matching spec.md §4.4's bounded-retry default.
func New(opts ...Option) *Pacer {
	p := &Pacer{
		calculator: NewDefault(),
		attempts:   1000,
	}
	for _, opt := range opts {
		opt(nil, p)
	}
	p.state.SleepTime = minSleepOf(p.calculator)
	return p
}

func minSleepOf(c Calculator) time.Duration {
	if d, ok := c.(*Default); ok {
		return d.minSleep
	}
	return 0
}

// SetAttempts changes the attempt budget.
func (p *Pacer) SetAttempts(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempts = n
}

// Call invokes fn up to the attempt budget. fn reports whether a
// non-nil error is retryable. Call sleeps between attempts according to
// the pacer's Calculator, and aborts early if ctx is done. If the
// attempt budget is exhausted, Call returns *ErrRetriesExceeded wrapping
// the last error.
func (p *Pacer) Call(ctx context.Context, fn func(ctx context.Context) (retry bool, err error)) error {
	var lastErr error
	for attempt := 0; attempt < p.attempts; attempt++ {
		retry, err := fn(ctx)
		p.end(retry && err != nil)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
		if attempt == p.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.sleepTime()):
		}
	}
	return &ErrRetriesExceeded{Last: lastErr}
}

func (p *Pacer) end(failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if failed {
		p.state.ConsecutiveRetries++
	} else {
		p.state.ConsecutiveRetries = 0
	}
	p.state.SleepTime = p.calculator.Calculate(p.state)
}

func (p *Pacer) sleepTime() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.SleepTime
}
