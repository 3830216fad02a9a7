package pricing

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"innkeeper/internal/settings"
)

// DefaultDebounce is how long a session waits after the last trigger
// before issuing the baseline request.
const DefaultDebounce = 500 * time.Millisecond

var (
	ErrSessionClosed = errors.New("pricing session closed")
	ErrUnknownField  = errors.New("unknown calculator field")
)

// Snapshot is the full view of a session at one point in time.
type Snapshot struct {
	State          CalculatorState `json:"state"`
	Costs          CostBreakdown   `json:"costs"`
	Baseline       *Baseline       `json:"baseline,omitempty"`
	Recommendation Recommendation  `json:"recommendation"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Session owns one event-editing calculator: its state, the per-field
// edit flags, the fetched baseline, and the debounced fetch machinery.
// Nothing is shared across sessions. Methods are safe against the
// timer goroutine; there is no other concurrent writer.
type Session struct {
	mu            sync.Mutex
	policy        settings.Policy
	eventTypeCode string
	state         CalculatorState
	warnings      []string
	baseline      *Baseline
	client        AnalysisClient
	debounce      time.Duration
	timer         *time.Timer
	seq           uint64
	cancelFetch   context.CancelFunc
	closed        bool
}

// Option tweaks session construction.
type Option func(*Session)

// WithDebounce overrides the fetch debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) { s.debounce = d }
}

// NewSession derives the initial state from the event and schedules
// the first baseline fetch. client may be nil, in which case the
// session works in default-only mode.
func NewSession(event EventSnapshot, policy settings.Policy, client AnalysisClient, opts ...Option) *Session {
	state, warnings := Derive(event, policy)

	s := &Session{
		policy:   policy,
		state:    state,
		warnings: warnings,
		client:   client,
		debounce: DefaultDebounce,
	}
	if event.EventType != nil {
		s.eventTypeCode = event.EventType.Code
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	s.scheduleFetchLocked()
	s.mu.Unlock()
	return s
}

// Set applies one user edit. raw is the untrusted text input; anything
// non-numeric becomes 0. Editing alcoholPerHead or iceTotal marks the
// field as user-owned for the rest of the session. A guest-count edit
// re-triggers the debounced baseline fetch.
func (s *Session) Set(field, raw string) error {
	v := ParseAmount(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	switch field {
	case "guests":
		if v < 0 {
			v = 0
		}
		s.state.Guests = v
		s.scheduleFetchLocked()
	case "hours":
		s.state.Hours = v
	case "managers":
		s.state.Managers = v
	case "bartenders":
		s.state.Bartenders = v
	case "managerOvertime":
		s.state.ManagerOvertimeHours = v
	case "bartenderOvertime":
		s.state.BartenderOvertimeHours = v
	case "drivingTime":
		s.state.DrivingTimeHours = v
	case "drivingDistance":
		s.state.DrivingDistanceKm = v
	case "hourlyWage":
		s.state.HourlyWage = v
	case "profitMargin":
		s.state.ProfitMargin = v
	case "alcoholPerHead":
		s.state.AlcoholPerHead = TrackedAmount{Value: v, UserEdited: true}
	case "iceTotal":
		s.state.IceTotal = TrackedAmount{Value: v, UserEdited: true}
	case "fuelTotal":
		s.state.FuelTotal = v
	case "logistics":
		s.state.LogisticsFlat = v
	case "extra":
		s.state.ExtraFlat = v
	default:
		return ErrUnknownField
	}
	return nil
}

// Snapshot recomputes the derived views and returns the current
// picture. The cost breakdown and recommendation are derivations, so
// they are always consistent with the state returned alongside them.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	costs := ComputeCosts(s.state)
	return Snapshot{
		State:          s.state,
		Costs:          costs,
		Baseline:       s.baseline,
		Recommendation: Recommend(costs, s.baseline, s.policy.VATPercent, s.state.ProfitMargin),
		Warnings:       s.warnings,
	}
}

// Close cancels the pending debounce timer and marks any in-flight
// request as ignorable. The session rejects edits afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
}

// scheduleFetchLocked restarts the debounce window for the current
// (eventTypeCode, guests) key. Bumping seq invalidates every earlier
// pending timer and in-flight response. Callers hold s.mu.
func (s *Session) scheduleFetchLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++

	if s.client == nil || s.eventTypeCode == "" || s.state.Guests <= 0 {
		if s.cancelFetch != nil {
			s.cancelFetch()
			s.cancelFetch = nil
		}
		return
	}

	seq := s.seq
	code := s.eventTypeCode
	guests := int(s.state.Guests)
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fetch(seq, code, guests)
	})
}

func (s *Session) fetch(seq uint64, code string, guests int) {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		cancel()
		return
	}
	if s.cancelFetch != nil {
		s.cancelFetch()
	}
	s.cancelFetch = cancel
	s.mu.Unlock()

	baseline, err := s.client.FetchAnalysis(ctx, code, guests)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelFetch != nil && seq == s.seq {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	if err != nil {
		// Prior baseline stays as-is; no automatic retry.
		log.Printf("[PRICING] analysis fetch failed for %s/%d: %v", code, guests, err)
		return
	}
	if s.closed || seq != s.seq || baseline == nil {
		// Superseded or empty response, discard.
		return
	}
	s.applyBaselineLocked(baseline)
}

// applyBaselineLocked merges a fetched baseline. The two
// default-seeding fields honor the edit guard; the display statistics
// and recommendation are stored unconditionally.
func (s *Session) applyBaselineLocked(b *Baseline) {
	s.baseline = b
	if !s.state.AlcoholPerHead.UserEdited {
		s.state.AlcoholPerHead.Value = math.Ceil(b.History.AlcoholPerHead)
	}
	if !s.state.IceTotal.UserEdited {
		s.state.IceTotal.Value = math.Ceil(b.History.IceExpenses)
	}
}
