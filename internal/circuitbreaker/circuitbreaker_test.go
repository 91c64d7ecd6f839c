package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRemote = errors.New("remote unavailable")

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestBreaker(cfg Config) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cb := New(cfg)
	cb.now = clock.Now
	return cb, clock
}

func fail(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "test", FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Second})
	ctx := context.Background()

	assert.Equal(t, errRemote, cb.Execute(ctx, fail(errRemote)))
	assert.Equal(t, StateClosed, cb.State())

	assert.Equal(t, errRemote, cb.Execute(ctx, fail(errRemote)))
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "test", FailureThreshold: 2, Timeout: time.Second})
	ctx := context.Background()

	_ = cb.Execute(ctx, fail(errRemote))
	require.NoError(t, cb.Execute(ctx, succeed))
	_ = cb.Execute(ctx, fail(errRemote))

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	tests := []struct {
		name          string
		probe         func(context.Context) error
		expectedState State
	}{
		{name: "successful probes close the circuit", probe: succeed, expectedState: StateClosed},
		{name: "failed probe reopens the circuit", probe: fail(errRemote), expectedState: StateOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transitions []State
			cb, clock := newTestBreaker(Config{
				Name:             "test",
				FailureThreshold: 1,
				SuccessThreshold: 2,
				Timeout:          time.Second,
				OnStateChange: func(_ string, _, to State) {
					transitions = append(transitions, to)
				},
			})
			ctx := context.Background()

			_ = cb.Execute(ctx, fail(errRemote))
			require.True(t, cb.IsOpen())

			clock.Advance(500 * time.Millisecond)
			assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen)

			clock.Advance(time.Second)
			_ = cb.Execute(ctx, tt.probe)
			if tt.expectedState == StateClosed {
				assert.Equal(t, StateHalfOpen, cb.State())
				_ = cb.Execute(ctx, tt.probe)
			}

			assert.Equal(t, tt.expectedState, cb.State())
			assert.Equal(t, []State{StateOpen, StateHalfOpen, tt.expectedState}, transitions)
		})
	}
}

func TestCircuitBreaker_IsFailure(t *testing.T) {
	validation := errors.New("validation")
	cb, _ := newTestBreaker(Config{
		Name:             "checkout",
		FailureThreshold: 1,
		IsFailure: func(err error) bool {
			return !errors.Is(err, validation)
		},
	})

	err := cb.Execute(context.Background(), fail(validation))
	assert.ErrorIs(t, err, validation)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_CancellationIsNotAFailure(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "test", FailureThreshold: 1})

	err := cb.Execute(context.Background(), fail(context.Canceled))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, cb.IsOpen())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb, clock := newTestBreaker(DefaultConfig("cart-store"))

	stats := cb.GetStats()
	assert.Equal(t, "cart-store", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)

	_ = cb.Execute(context.Background(), fail(errRemote))

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, clock.Now(), stats.LastFailure)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}
