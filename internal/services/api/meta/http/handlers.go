// Package http serves the unauthenticated meta endpoints: health, readiness and build info
package http

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"hidegrade/internal/core/version"
	"hidegrade/internal/modkit/httpkit"
	ptime "hidegrade/internal/platform/time"

	"golang.org/x/sync/errgroup"
)

// ReadyTimeout bounds the whole readiness probe
const ReadyTimeout = 2 * time.Second

// Pinger is a dependency /ready can probe
type Pinger interface {
	Ping(context.Context) error
}

// Deps configure the meta handlers
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Clock       ptime.Clock

	// Checks are probed by /ready, a nil Pinger is reported as skipped
	Checks map[string]Pinger
}

// Register mounts /health, /ready and /version on r
func Register(r httpkit.Router, d Deps) {
	httpkit.Get(r, "/health", d.health)
	httpkit.Get(r, "/ready", d.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
}

// HealthResponse reports liveness and uptime
// swagger:model
type HealthResponse struct {
	OK            bool      `json:"ok" example:"true"`
	Service       string    `json:"service" example:"hidegrade-api"`
	Started       time.Time `json:"started" example:"2024-06-10T13:00:00Z"`
	Now           time.Time `json:"now" example:"2024-06-10T13:05:00Z"`
	UptimeSeconds int64     `json:"uptime_seconds" example:"300"`
	Uptime        string    `json:"uptime" example:"5m0s"`
}

// Check statuses
const (
	CheckOK      = "ok"
	CheckFail    = "fail"
	CheckSkipped = "skipped"
)

// ReadyCheck is the outcome of one dependency probe
type ReadyCheck struct {
	Name   string `json:"name" example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse is fail when any check failed, degraded when any was skipped, else ok
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    time.Time    `json:"now" example:"2024-06-10T13:05:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (d Deps) health(*http.Request) (any, error) {
	now := d.Clock.Now().UTC()
	up := now.Sub(d.StartedAt).Truncate(time.Second)
	return HealthResponse{
		OK:            true,
		Service:       d.ServiceName,
		Started:       d.StartedAt.UTC(),
		Now:           now,
		UptimeSeconds: int64(up / time.Second),
		Uptime:        up.String(),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (d Deps) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), ReadyTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		checks = make([]ReadyCheck, 0, len(d.Checks))
		g      errgroup.Group
	)
	for name, p := range d.Checks {
		g.Go(func() error {
			c := probe(ctx, name, p)
			mu.Lock()
			checks = append(checks, c)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	sort.Slice(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })

	status := CheckOK
	for _, c := range checks {
		switch {
		case c.Status == CheckFail:
			status = CheckFail
		case c.Status == CheckSkipped && status == CheckOK:
			status = "degraded"
		}
	}
	return ReadyResponse{Status: status, Checks: checks, Now: d.Clock.Now().UTC()}, nil
}

func probe(ctx context.Context, name string, p Pinger) ReadyCheck {
	if p == nil {
		return ReadyCheck{Name: name, Status: CheckSkipped}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: CheckFail, Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: CheckOK}
}
