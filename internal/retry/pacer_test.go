package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalculatorDecay(t *testing.T) {
	c := NewDefault(MinSleep(1*time.Millisecond), MaxSleep(1*time.Second), DecayConstant(1))
	got := c.Calculate(State{SleepTime: 8 * time.Millisecond})
	assert.Equal(t, 4*time.Millisecond, got)
}

func TestDefaultCalculatorDecayFloor(t *testing.T) {
	c := NewDefault(MinSleep(1*time.Millisecond), MaxSleep(1*time.Second), DecayConstant(4))
	got := c.Calculate(State{SleepTime: 1 * time.Millisecond})
	assert.Equal(t, 1*time.Millisecond, got)
}

func TestDefaultCalculatorAttack(t *testing.T) {
	c := NewDefault(MinSleep(1*time.Millisecond), MaxSleep(1*time.Second), AttackConstant(1))
	got := c.Calculate(State{SleepTime: 1 * time.Millisecond, ConsecutiveRetries: 1})
	assert.Equal(t, 2*time.Millisecond, got)
}

func TestDefaultCalculatorAttackCeiling(t *testing.T) {
	c := NewDefault(MinSleep(1*time.Millisecond), MaxSleep(10*time.Millisecond), AttackConstant(8))
	got := c.Calculate(State{SleepTime: 1 * time.Millisecond, ConsecutiveRetries: 1})
	assert.Equal(t, 10*time.Millisecond, got)
}

func TestPacerCallSucceedsFirstTry(t *testing.T) {
	p := New(CalculatorOption(NewDefault(MinSleep(time.Microsecond), MaxSleep(time.Millisecond))))
	calls := 0
	err := p.Call(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPacerCallRetriesThenSucceeds(t *testing.T) {
	p := New(CalculatorOption(NewDefault(MinSleep(time.Microsecond), MaxSleep(time.Millisecond))))
	calls := 0
	err := p.Call(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		if calls < 3 {
			return true, errors.New("transient")
		}
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPacerCallStopsOnNonRetryable(t *testing.T) {
	p := New(CalculatorOption(NewDefault(MinSleep(time.Microsecond), MaxSleep(time.Millisecond))))
	calls := 0
	wantErr := errors.New("application error")
	err := p.Call(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		return false, wantErr
	})
	assert.Equal(t, wantErr, err)
	assert.Equal(t, 1, calls)
}

func TestPacerCallExhaustsAttempts(t *testing.T) {
	p := New(Attempts(3), CalculatorOption(NewDefault(MinSleep(time.Microsecond), MaxSleep(time.Millisecond))))
	calls := 0
	err := p.Call(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		return true, errors.New("always fails")
	})
	require.Error(t, err)
	var exceeded *ErrRetriesExceeded
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, 3, calls)
}

func TestPacerCallRespectsContextCancellation(t *testing.T) {
	p := New(Attempts(1000), CalculatorOption(NewDefault(MinSleep(time.Hour), MaxSleep(time.Hour))))
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := p.Call(ctx, func(ctx context.Context) (bool, error) {
		calls++
		return true, errors.New("always fails")
	})
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 1, calls)
}
