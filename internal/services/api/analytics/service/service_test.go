package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hidegrade/internal/core/analytics"
	perr "hidegrade/internal/platform/errors"
	"hidegrade/internal/services/api/analytics/domain"
	"hidegrade/internal/services/api/analytics/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted answers ListByOwner from a queue of steps, each step may block until released
type step struct {
	records []analytics.Record
	err     error
	gate    chan struct{}
	entered chan struct{}
}

type scripted struct {
	mu    sync.Mutex
	steps []*step
}

func (s *scripted) ListByOwner(ctx context.Context, _ string) ([]analytics.Record, error) {
	s.mu.Lock()
	st := s.steps[0]
	s.steps = s.steps[1:]
	s.mu.Unlock()
	if st.entered != nil {
		close(st.entered)
	}
	if st.gate != nil {
		<-st.gate
	}
	return st.records, st.err
}

var now = time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

func ms(y int, m time.Month, d, h int) int64 {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC).UnixMilli()
}

func completed(id string, ts int64, quality string, defects ...string) analytics.Record {
	return analytics.Record{
		ID: id, OwnerID: "owner-1", TimestampMs: ts, Status: analytics.StatusCompleted,
		Result: &analytics.Grading{QualityRaw: quality, Confidence: 0.9, DefectNames: defects},
	}
}

func newSvc(t *testing.T, src domain.RecordSource, opts ...service.Option) (*service.Svc, *service.Metrics) {
	t.Helper()
	m := service.NewMetrics(prometheus.NewRegistry())
	base := []service.Option{
		service.WithClock(func() time.Time { return now }),
		service.WithLocation(time.UTC),
		service.WithMetrics(m),
	}
	return service.New(src, append(base, opts...)...), m
}

func summary(start, end string) domain.SummaryInput {
	return domain.SummaryInput{Range: domain.Range{Start: start, End: end}}
}

func TestSummary_PublishesAndServesLatest(t *testing.T) {
	src := &scripted{steps: []*step{{records: []analytics.Record{
		completed("a", ms(2024, 6, 9, 12), "TR1", "Furo"),
		completed("b", ms(2024, 6, 10, 12), "R", "furo", "Risco"),
	}}}}
	svc, m := newSvc(t, src)

	_, err := svc.Latest("owner-1")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))

	res, err := svc.Summary(context.Background(), "owner-1", summary("2024-06-09", "2024-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Snapshot.TotalRecords)
	assert.Len(t, res.Buckets, 2)

	pub, err := svc.Latest("owner-1")
	require.NoError(t, err)
	assert.Equal(t, res, pub.Result)
	assert.Equal(t, "UTC", pub.TZ)
	assert.Equal(t, now, pub.ComputedAt)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Computations.WithLabelValues("published")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsScanned))
}

func TestSummary_FailureKeepsPreviousState(t *testing.T) {
	src := &scripted{steps: []*step{
		{records: []analytics.Record{completed("a", ms(2024, 6, 10, 12), "TR2")}},
		{err: perr.Unavailablef("database unavailable")},
	}}
	svc, m := newSvc(t, src)
	ctx := context.Background()

	first, err := svc.Summary(ctx, "owner-1", summary("2024-06-10", "2024-06-10"))
	require.NoError(t, err)

	_, err = svc.Summary(ctx, "owner-1", summary("2024-06-01", "2024-06-10"))
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))

	pub, err := svc.Latest("owner-1")
	require.NoError(t, err)
	assert.Equal(t, first, pub.Result)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Computations.WithLabelValues("failed")))
}

func TestSummary_LastWriteWins(t *testing.T) {
	slow := &step{
		records: []analytics.Record{completed("old", ms(2024, 6, 10, 9), "TR1")},
		gate:    make(chan struct{}),
		entered: make(chan struct{}),
	}
	fast := &step{records: []analytics.Record{
		completed("old", ms(2024, 6, 10, 9), "TR1"),
		completed("new", ms(2024, 6, 10, 10), "TR3"),
	}}
	src := &scripted{steps: []*step{slow, fast}}
	svc, m := newSvc(t, src)
	ctx := context.Background()

	done := make(chan analytics.Result)
	go func() {
		res, err := svc.Summary(ctx, "owner-1", summary("2024-06-10", "2024-06-10"))
		assert.NoError(t, err)
		done <- res
	}()
	<-slow.entered

	newer, err := svc.Summary(ctx, "owner-1", summary("2024-06-10", "2024-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 2, newer.Snapshot.TotalRecords)

	close(slow.gate)
	older := <-done
	assert.Equal(t, 1, older.Snapshot.TotalRecords, "the caller still gets its own answer")

	pub, err := svc.Latest("owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, pub.Result.Snapshot.TotalRecords, "the stale refresh must not overwrite the newer one")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Stale))
}

func TestSummary_RejectsBadInput(t *testing.T) {
	svc, _ := newSvc(t, &scripted{}, service.WithMaxRangeDays(31))
	ctx := context.Background()

	_, err := svc.Summary(ctx, "", summary("2024-06-01", "2024-06-02"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnauthorized))

	in := summary("2024-06-01", "2024-06-02")
	in.TZ = "Nowhere/Land"
	_, err = svc.Summary(ctx, "owner-1", in)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = svc.Summary(ctx, "owner-1", summary("2024-02-30", "2024-03-02"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = svc.Summary(ctx, "owner-1", summary("2024-01-01", "2024-03-01"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestSummary_ReversedRangeIsEmpty(t *testing.T) {
	src := &scripted{steps: []*step{{records: []analytics.Record{completed("a", ms(2024, 6, 10, 12), "TR1")}}}}
	svc, _ := newSvc(t, src)

	res, err := svc.Summary(context.Background(), "owner-1", summary("2024-06-10", "2024-06-01"))
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Empty(t, res.Buckets)
	assert.Zero(t, res.Snapshot.TotalRecords)
}

func TestSummary_ViewerCalendar(t *testing.T) {
	// 02:00 UTC on 06-10 is still 06-09 in Sao Paulo
	recs := []analytics.Record{completed("a", ms(2024, 6, 10, 2), "TR1")}
	src := &scripted{steps: []*step{{records: recs}, {records: recs}}}
	svc, _ := newSvc(t, src)
	ctx := context.Background()

	utc, err := svc.Summary(ctx, "owner-1", summary("2024-06-10", "2024-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 1, utc.Snapshot.TotalRecords)

	in := summary("2024-06-10", "2024-06-10")
	in.TZ = "America/Sao_Paulo"
	sp, err := svc.Summary(ctx, "owner-1", in)
	require.NoError(t, err)
	assert.Zero(t, sp.Snapshot.TotalRecords)
}

func TestDefaultRange(t *testing.T) {
	svc, _ := newSvc(t, &scripted{})

	r, err := svc.DefaultRange("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRange{Start: "2024-06-04", End: "2024-06-10", TZ: "UTC"}, r)

	r, err = svc.DefaultRange("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, analytics.DateKey("2024-06-11"), r.End)

	_, err = svc.DefaultRange("Bad/Zone")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestBoard_OlderGenerationNeverOverwrites(t *testing.T) {
	b := service.NewBoard()
	g1, g2 := b.Ticket(), b.Ticket()
	require.Less(t, g1, g2)

	assert.True(t, b.Publish("o", domain.Published{Generation: g2}))
	assert.False(t, b.Publish("o", domain.Published{Generation: g1}))
	assert.True(t, b.Publish("other", domain.Published{Generation: g1}))

	p, ok := b.Latest("o")
	require.True(t, ok)
	assert.Equal(t, g2, p.Generation)
}

func TestNew_PanicsWithoutSource(t *testing.T) {
	assert.Panics(t, func() { service.New(nil) })
}
