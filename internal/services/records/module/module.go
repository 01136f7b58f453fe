// Package module wires inspection records into the API using modkit
package module

import (
	"time"

	modkit "hidegrade/internal/modkit"
	"hidegrade/internal/modkit/httpkit"
	"hidegrade/internal/modkit/repokit"
	str "hidegrade/internal/platform/strings"
	"hidegrade/internal/services/records/domain"
	recordshttp "hidegrade/internal/services/records/http"
	recordsrepo "hidegrade/internal/services/records/repo"
	recordssvc "hidegrade/internal/services/records/service"
)

// Ports are what records offers other modules
type Ports struct {
	Records domain.RecordSource
}

// DefaultStatementTimeout caps each statement of a records transaction
const DefaultStatementTimeout = 5 * time.Second

// Module implements the records module
type Module struct {
	b   modkit.Built
	svc *recordssvc.Svc
}

// New constructs the records module, deps.PG must be set
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("records"), modkit.WithPrefix("/records")}, opts...)...)

	db := repokit.WithBeginHooks(deps.PG,
		repokit.StatementTimeout(deps.Cfg.MayDuration("TX_STATEMENT_TIMEOUT", DefaultStatementTimeout)),
	)
	svc := recordssvc.New(db, recordsrepo.NewPG(),
		recordssvc.WithClock(deps.Clock),
		recordssvc.WithLocation(deps.Location()),
	)
	return &Module{b: b, svc: svc}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { recordshttp.Register(rr, m.svc) })
}

// Ports returns the record source consumed by analytics
func (m *Module) Ports() any { return Ports{Records: m.svc} }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
