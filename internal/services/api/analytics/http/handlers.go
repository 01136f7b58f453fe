// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"hidegrade/internal/modkit/httpkit"
	"hidegrade/internal/services/api/analytics/domain"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SummaryInput](r, "/summary", h.summary)
	httpkit.Get(r, "/range/default", h.defaultRange)
	httpkit.Get(r, "/latest", h.latest)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /analytics/summary Analytics analyticsSummary
// @Summary Quality metrics for a date range
// @Description Buckets, snapshot, top defects and grade distribution for the inclusive local date range
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.SummaryInput true "Range"
// @Success 200 {object} analytics.Result "ok"
// @Failure 400 {object} httpkit.Envelope "invalid range or zone"
// @Router /analytics/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Summary(r.Context(), owner, in)
}

// swagger:route GET /analytics/range/default Analytics analyticsDefaultRange
// @Summary The range the dashboard opens on
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param tz query string false "IANA zone"
// @Success 200 {object} domain.DefaultRange "ok"
// @Router /analytics/range/default [get]
func (h *handlers) defaultRange(r *stdhttp.Request) (any, error) {
	return h.svc.DefaultRange(r.URL.Query().Get("tz"))
}

// swagger:route GET /analytics/latest Analytics analyticsLatest
// @Summary Most recently published summary of the caller
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Published "ok"
// @Failure 404 {object} httpkit.Envelope "nothing published yet"
// @Router /analytics/latest [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Latest(owner)
}
