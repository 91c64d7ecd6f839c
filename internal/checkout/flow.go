package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/guttosm/storefront-cart/internal/cart"
)

// Status is the state of a session's checkout flow.
type Status string

const (
	StatusIdle           Status = "IDLE"
	StatusBuilding       Status = "BUILDING"
	StatusAwaitingRemote Status = "AWAITING_REMOTE"
	StatusRedirecting    Status = "REDIRECTING"
	StatusFailed         Status = "FAILED"
)

// InFlight reports whether an attempt is running.
func (s Status) InFlight() bool {
	return s == StatusBuilding || s == StatusAwaitingRemote
}

func (s Status) String() string {
	return string(s)
}

// FlowStatus is a point-in-time view of a Flow.
type FlowStatus struct {
	Status      Status `json:"status" example:"IDLE"`
	Attempt     uint64 `json:"attempt" example:"1"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Flow drives one session through Idle → Building → AwaitingRemote → Redirecting|Failed.
// Every attempt carries a token; Abandon or a cancelled context invalidates it and a
// late response for an invalidated token is discarded. Failed attempts are not retried.
type Flow struct {
	handoff *Handoff

	mu          sync.Mutex
	status      Status
	attempt     uint64
	redirectURL string
	lastErr     error
}

// NewFlow creates an idle flow.
func NewFlow(handoff *Handoff) *Flow {
	return &Flow{handoff: handoff, status: StatusIdle}
}

// Start runs one checkout attempt for the given cart snapshot and returns the redirect URL.
func (f *Flow) Start(ctx context.Context, state cart.State) (string, error) {
	token, err := f.begin()
	if err != nil {
		return "", err
	}

	lines, err := BuildLineItems(state)
	if err != nil {
		f.finish(token, StatusIdle, "", nil)
		return "", err
	}
	if !f.advance(token) {
		return "", ErrCheckoutAbandoned
	}

	url, err := f.handoff.RequestCheckout(ctx, lines)

	if ctxErr := ctx.Err(); ctxErr != nil {
		f.finish(token, StatusIdle, "", nil)
		return "", fmt.Errorf("%w: %w", ErrCheckoutAbandoned, ctxErr)
	}
	if err != nil {
		if !f.finish(token, StatusFailed, "", err) {
			return "", ErrCheckoutAbandoned
		}
		return "", err
	}
	if !f.finish(token, StatusRedirecting, url, nil) {
		return "", ErrCheckoutAbandoned
	}
	return url, nil
}

// Abandon invalidates the running attempt, if any, and returns the flow to Idle.
// It reports whether an in-flight attempt was abandoned.
func (f *Flow) Abandon() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	inFlight := f.status.InFlight()
	if inFlight {
		f.attempt++
	}
	f.status = StatusIdle
	f.redirectURL = ""
	f.lastErr = nil
	return inFlight
}

// Status returns the current flow state.
func (f *Flow) Status() FlowStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := FlowStatus{Status: f.status, Attempt: f.attempt, RedirectURL: f.redirectURL}
	if f.lastErr != nil {
		s.Error = f.lastErr.Error()
	}
	return s
}

func (f *Flow) begin() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status.InFlight() {
		return 0, ErrCheckoutInProgress
	}
	f.attempt++
	f.status = StatusBuilding
	f.redirectURL = ""
	f.lastErr = nil
	return f.attempt, nil
}

func (f *Flow) advance(token uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attempt != token {
		return false
	}
	f.status = StatusAwaitingRemote
	return true
}

// finish records the outcome of attempt token. It returns false when the
// attempt was invalidated in the meantime, leaving the flow untouched.
func (f *Flow) finish(token uint64, status Status, url string, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attempt != token {
		return false
	}
	f.status = status
	f.redirectURL = url
	f.lastErr = err
	return true
}
