// Package service contains inspection record workflows
package service

import (
	"context"
	"strings"
	"time"

	"hidegrade/internal/core/analytics"
	"hidegrade/internal/core/normalize"
	"hidegrade/internal/modkit/repokit"
	perr "hidegrade/internal/platform/errors"
	"hidegrade/internal/platform/logger"
	ptime "hidegrade/internal/platform/time"
	"hidegrade/internal/services/records/domain"
	"hidegrade/internal/services/records/repo"

	"github.com/google/uuid"
)

// Service defines the records service contract
type Service interface {
	domain.ServicePort
}

// Option configures Svc
type Option func(*Svc)

// WithClock pins the clock used for timestamps
func WithClock(c ptime.Clock) Option { return func(s *Svc) { s.clock = c } }

// WithLocation sets the calendar used by Search when the request names no zone
func WithLocation(loc *time.Location) Option {
	return func(s *Svc) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithIDs replaces the id generator
func WithIDs(fn func() string) Option { return func(s *Svc) { s.newID = fn } }

// Svc implements the records service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	clock ptime.Clock
	loc   *time.Location
	newID func() string
}

// New constructs a records service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("records.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("records.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		clock:  ptime.System(),
		loc:    time.Local,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Migrate applies the records schema
func (s *Svc) Migrate(ctx context.Context) error { return s.Repo.Migrate(ctx) }

func requireOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return perr.Unauthorizedf("missing owner")
	}
	return nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return perr.WithField(perr.InvalidArgf("invalid record id %q", id), "id")
	}
	return nil
}

// Create stores a new PENDING record stamped with the current time
func (s *Svc) Create(ctx context.Context, owner string, in domain.CreateInput) (domain.Record, error) {
	if err := requireOwner(owner); err != nil {
		return domain.Record{}, err
	}
	now := s.clock.Now()
	row := repo.Row{
		ID:          s.newID(),
		OwnerID:     owner,
		LotID:       strings.TrimSpace(normalize.Sanitize(in.LotID)),
		ImageURL:    in.ImageURL,
		StoragePath: in.StoragePath,
		Notes:       normalize.Sanitize(in.Notes),
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if row.LotID == "" {
		return domain.Record{}, perr.WithField(perr.New(perr.ErrorCodeValidation, "lot_id is required"), "lot_id")
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Record{}, err
	}
	logger.C(ctx).Debug().Str("record_id", row.ID).Str("lot_id", row.LotID).Msg("record created")
	return toDomain(row), nil
}

// Complete attaches the classifier result and moves the record to COMPLETED
func (s *Svc) Complete(ctx context.Context, owner, id string, in domain.CompleteInput) (domain.Record, error) {
	if err := requireOwner(owner); err != nil {
		return domain.Record{}, err
	}
	if err := checkID(id); err != nil {
		return domain.Record{}, err
	}
	out := repo.Outcome{
		Quality:     in.Quality,
		Confidence:  in.Confidence,
		Defects:     in.Defects,
		Description: in.Description,
	}
	for _, v := range in.DefectsVisual {
		out.Visual = append(out.Visual, repo.Visual{Type: v.Type, Box: v.Box})
	}

	var row repo.Row
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		n, err := r.Complete(ctx, owner, id, out, s.clock.Now())
		if err != nil {
			return err
		}
		row, err = r.Get(ctx, owner, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return perr.Conflictf("record %s is %s, only PENDING records can be completed", id, row.Status)
		}
		return nil
	})
	if err != nil {
		return domain.Record{}, err
	}
	return toDomain(row), nil
}

// Fail moves a PENDING record to ERROR and appends the reason to its notes
func (s *Svc) Fail(ctx context.Context, owner, id string, in domain.FailInput) (domain.Record, error) {
	if err := requireOwner(owner); err != nil {
		return domain.Record{}, err
	}
	if err := checkID(id); err != nil {
		return domain.Record{}, err
	}
	reason := strings.TrimSpace(normalize.Sanitize(in.Reason))

	var row repo.Row
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		n, err := r.Fail(ctx, owner, id, reason, s.clock.Now())
		if err != nil {
			return err
		}
		row, err = r.Get(ctx, owner, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return perr.Conflictf("record %s is %s, only PENDING records can fail", id, row.Status)
		}
		return nil
	})
	if err != nil {
		return domain.Record{}, err
	}
	logger.C(ctx).Warn().Str("record_id", id).Str("reason", reason).Msg("record classification failed")
	return toDomain(row), nil
}

// Get returns one record of owner
func (s *Svc) Get(ctx context.Context, owner, id string) (domain.Record, error) {
	if err := requireOwner(owner); err != nil {
		return domain.Record{}, err
	}
	if err := checkID(id); err != nil {
		return domain.Record{}, err
	}
	row, err := s.Repo.Get(ctx, owner, id)
	if err != nil {
		return domain.Record{}, err
	}
	return toDomain(row), nil
}

// Delete removes one record of owner
func (s *Svc) Delete(ctx context.Context, owner, id string) error {
	if err := requireOwner(owner); err != nil {
		return err
	}
	if err := checkID(id); err != nil {
		return err
	}
	n, err := s.Repo.Delete(ctx, owner, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return perr.NotFoundf("record %s not found", id)
	}
	return nil
}

// Search lists the history of owner newest first
// the date bounds are local calendar days of in.TZ, or the service zone when empty
func (s *Svc) Search(ctx context.Context, owner string, in domain.SearchInput) ([]domain.Record, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	loc, err := ptime.Location(in.TZ, s.loc)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("unknown time zone %q", in.TZ), "tz")
	}
	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if status == domain.StatusAll {
		status = ""
	}

	rows, err := s.Repo.List(ctx, owner, repo.Filter{LotID: strings.TrimSpace(in.LotID), Status: status})
	if err != nil {
		return nil, err
	}

	start, end := analytics.DateKey(in.Start), analytics.DateKey(in.End)
	out := make([]domain.Record, 0, len(rows))
	for _, r := range rows {
		k := analytics.KeyOf(r.CreatedAt, loc)
		if start != "" && k < start {
			continue
		}
		if end != "" && k > end {
			continue
		}
		out = append(out, toDomain(r))
	}
	return out, nil
}

// ListByOwner returns every record of owner in the engine input shape
func (s *Svc) ListByOwner(ctx context.Context, owner string) ([]analytics.Record, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	rows, err := s.Repo.List(ctx, owner, repo.Filter{})
	if err != nil {
		return nil, err
	}
	out := make([]analytics.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAnalytics(r))
	}
	return out, nil
}
