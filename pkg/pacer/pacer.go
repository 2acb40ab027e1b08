// Package pacer enforces a minimum time interval between consecutive
// outgoing API requests issued through the same session. MAL does not
// publish rate limit headers, so pacing is the client's responsibility.
package pacer

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for request pacing.
var (
	pacerWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mal_pacer_waits_total",
		Help: "Total number of requests that had to wait for a pacing slot",
	})

	pacerWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mal_pacer_wait_seconds",
		Help:    "Time spent waiting for a pacing slot",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5},
	})
)

// Pacing constants.
const (
	// DefaultDelay is the spacing applied when none is configured.
	DefaultDelay = 1 * time.Second

	// RecommendedFloor is the smallest delay considered safe against the
	// upstream rate limit. Values below it are accepted with a warning.
	RecommendedFloor = 1 * time.Second
)

// ErrNegativeDelay is returned when the pacer is configured with a
// negative delay.
var ErrNegativeDelay = errors.New("pacer delay must not be negative")

// Clock abstracts time reads and sleeping so tests can simulate pacing
// without real waits.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the wall clock used outside of tests.
func SystemClock() Clock {
	return systemClock{}
}

// Pacer spaces consecutive requests at least one delay apart. Slots are
// scheduled eagerly: each Acquire sets the next allowed send time to
// now+delay after any wait, so bursts serialize exactly delay apart
// instead of drifting with processing time.
//
// A Pacer is owned by a single session and is not safe for concurrent
// unsynchronized callers; shared use requires an external mutex.
type Pacer struct {
	clock         Clock
	delay         time.Duration
	nextAllowedAt time.Time
	logger        zerolog.Logger
}

// New creates a pacer with the given delay using the system clock.
// A negative delay fails with ErrNegativeDelay. A delay below
// RecommendedFloor succeeds with a warning.
func New(delay time.Duration, logger zerolog.Logger) (*Pacer, error) {
	return NewWithClock(delay, SystemClock(), logger)
}

// NewWithClock creates a pacer with an injected clock.
func NewWithClock(delay time.Duration, clock Clock, logger zerolog.Logger) (*Pacer, error) {
	p := &Pacer{
		clock:  clock,
		logger: logger,
	}
	if err := p.SetDelay(delay); err != nil {
		return nil, err
	}
	return p, nil
}

// SetDelay changes the minimum spacing between requests. Negative values
// fail with ErrNegativeDelay; values below RecommendedFloor are accepted
// but logged as a warning.
func (p *Pacer) SetDelay(delay time.Duration) error {
	if delay < 0 {
		return ErrNegativeDelay
	}
	if delay < RecommendedFloor {
		p.logger.Warn().
			Dur("delay", delay).
			Dur("recommended_floor", RecommendedFloor).
			Msg("Pacer delay below recommended floor")
	}
	p.delay = delay
	return nil
}

// Delay returns the configured minimum spacing.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Acquire blocks until the next pacing slot is available, then schedules
// the slot after it. The wait is bounded by the configured delay.
func (p *Pacer) Acquire() {
	now := p.clock.Now()
	if wait := p.nextAllowedAt.Sub(now); wait > 0 {
		pacerWaitsTotal.Inc()
		pacerWaitSeconds.Observe(wait.Seconds())

		p.logger.Debug().
			Dur("wait", wait).
			Msg("Waiting for pacing slot")

		p.clock.Sleep(wait)
	}

	// Schedule the next slot from the post-wait clock read.
	p.nextAllowedAt = p.clock.Now().Add(p.delay)
}
