// Package module wires meta endpoints into the API
package module

import (
	"hidegrade/internal/core/version"
	modkit "hidegrade/internal/modkit"
	"hidegrade/internal/modkit/httpkit"
	str "hidegrade/internal/platform/strings"
	metahttp "hidegrade/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module, the uptime clock starts here
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	var pg metahttp.Pinger
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		pg = p
	}
	d := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   deps.Clock.Now(),
		Clock:       deps.Clock,
		Checks:      map[string]metahttp.Pinger{"pg": pg},
	}
	return &Module{b: b, deps: d}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
