// Package service runs analytics refreshes and keeps the published board
package service

import (
	"context"
	"strings"
	"time"

	"hidegrade/internal/core/analytics"
	perr "hidegrade/internal/platform/errors"
	"hidegrade/internal/platform/logger"
	ptime "hidegrade/internal/platform/time"
	"hidegrade/internal/services/api/analytics/domain"
)

const (
	// DefaultRangeDays is the window the dashboard opens on
	DefaultRangeDays = 7
	// DefaultMaxRangeDays caps one request, two years plus a leap day
	DefaultMaxRangeDays = 731
)

// Option configures Svc
type Option func(*Svc)

// WithClock pins now
func WithClock(c ptime.Clock) Option { return func(s *Svc) { s.clock = c } }

// WithLocation sets the calendar used when a request names no zone
func WithLocation(loc *time.Location) Option {
	return func(s *Svc) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithMaxRangeDays caps the number of buckets one request may ask for, <= 0 keeps the default
func WithMaxRangeDays(n int) Option {
	return func(s *Svc) {
		if n > 0 {
			s.maxDays = n
		}
	}
}

// WithTopN sets the ranked defect list length
func WithTopN(n int) Option { return func(s *Svc) { s.topN = n } }

// WithMetrics sets the collectors, nil disables them
func WithMetrics(m *Metrics) Option { return func(s *Svc) { s.metrics = m } }

// WithBoard shares a board between services
func WithBoard(b *Board) Option { return func(s *Svc) { s.board = b } }

// Svc implements domain.ServicePort
type Svc struct {
	src     domain.RecordSource
	board   *Board
	metrics *Metrics

	clock   ptime.Clock
	loc     *time.Location
	maxDays int
	topN    int
}

// New constructs the analytics service
func New(src domain.RecordSource, opts ...Option) *Svc {
	if src == nil {
		panic("analytics.Service requires a non nil RecordSource")
	}
	s := &Svc{
		src:     src,
		board:   NewBoard(),
		clock:   ptime.System(),
		loc:     time.Local,
		maxDays: DefaultMaxRangeDays,
		topN:    analytics.DefaultTopN,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Svc) location(tz string) (*time.Location, error) {
	loc, err := ptime.Location(tz, s.loc)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("unknown time zone %q", tz), "tz")
	}
	return loc, nil
}

func (s *Svc) count(outcome string) {
	if s.metrics != nil {
		s.metrics.Computations.WithLabelValues(outcome).Inc()
	}
}

// Summary fetches every record of owner, computes the range and publishes it on the board
// a failed fetch leaves the board untouched
func (s *Svc) Summary(ctx context.Context, owner string, in domain.SummaryInput) (analytics.Result, error) {
	if strings.TrimSpace(owner) == "" {
		return analytics.Result{}, perr.Unauthorizedf("missing owner")
	}
	loc, err := s.location(in.TZ)
	if err != nil {
		return analytics.Result{}, err
	}
	start, err := analytics.ParseKey(in.Range.Start)
	if err != nil {
		return analytics.Result{}, perr.WithField(perr.InvalidArgf("invalid start %q", in.Range.Start), "range.start")
	}
	end, err := analytics.ParseKey(in.Range.End)
	if err != nil {
		return analytics.Result{}, perr.WithField(perr.InvalidArgf("invalid end %q", in.Range.End), "range.end")
	}
	if n := analytics.DaysBetween(start, end); n > s.maxDays {
		return analytics.Result{}, perr.WithField(perr.InvalidArgf("range spans %d days, at most %d allowed", n, s.maxDays), "range")
	}

	gen := s.board.Ticket()
	records, err := s.src.ListByOwner(ctx, owner)
	if err != nil {
		s.count("failed")
		logger.C(ctx).Error().Err(err).Uint64("generation", gen).Msg("analytics fetch failed")
		return analytics.Result{}, err
	}

	began := time.Now()
	res := analytics.Compute(records, start, end, analytics.WithLocation(loc), analytics.WithTopN(s.topN))
	if s.metrics != nil {
		s.metrics.ComputeSeconds.Observe(time.Since(began).Seconds())
		s.metrics.RecordsScanned.Add(float64(len(records)))
	}

	pub := domain.Published{Generation: gen, ComputedAt: s.clock.Now().UTC(), TZ: loc.String(), Result: res}
	if s.board.Publish(owner, pub) {
		s.count("published")
	} else {
		s.count("stale")
		if s.metrics != nil {
			s.metrics.Stale.Inc()
		}
		logger.C(ctx).Debug().Uint64("generation", gen).Msg("newer summary already published")
	}
	return res, nil
}

// DefaultRange returns the last DefaultRangeDays local days ending today
func (s *Svc) DefaultRange(tz string) (domain.DefaultRange, error) {
	loc, err := s.location(tz)
	if err != nil {
		return domain.DefaultRange{}, err
	}
	start, end := analytics.DefaultRange(s.clock.Now(), loc, DefaultRangeDays)
	return domain.DefaultRange{Start: start, End: end, TZ: loc.String()}, nil
}

// Latest returns the newest published entry of owner
func (s *Svc) Latest(owner string) (domain.Published, error) {
	if strings.TrimSpace(owner) == "" {
		return domain.Published{}, perr.Unauthorizedf("missing owner")
	}
	p, ok := s.board.Latest(owner)
	if !ok {
		return domain.Published{}, perr.NotFoundf("no summary published yet")
	}
	return p, nil
}
