// Package module wires analytics into the API using modkit
package module

import (
	modkit "hidegrade/internal/modkit"
	"hidegrade/internal/modkit/httpkit"
	str "hidegrade/internal/platform/strings"
	"hidegrade/internal/services/api/analytics/domain"
	analyticshttp "hidegrade/internal/services/api/analytics/http"
	analyticssvc "hidegrade/internal/services/api/analytics/service"
)

// Ports are the cross module inputs, pass them with modkit.WithPorts
type Ports struct {
	Records domain.RecordSource
}

// Module implements the analytics module
type Module struct {
	b   modkit.Built
	svc *analyticssvc.Svc
}

// New constructs the analytics module, it panics without a record source port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analytics"), modkit.WithPrefix("/analytics")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Records == nil {
		panic("analytics module requires Ports{Records}")
	}

	svc := analyticssvc.New(ports.Records,
		analyticssvc.WithClock(deps.Clock),
		analyticssvc.WithLocation(deps.Location()),
		analyticssvc.WithMaxRangeDays(deps.Cfg.MayInt("MAX_RANGE_DAYS", analyticssvc.DefaultMaxRangeDays)),
		analyticssvc.WithMetrics(analyticssvc.NewMetrics(deps.Reg)),
	)
	return &Module{b: b, svc: svc}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { analyticshttp.Register(rr, m.svc) })
}

// Ports exposes the service port
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
