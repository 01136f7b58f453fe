// Package api composes the HTTP API from its modules
package api

import (
	"time"

	"hidegrade/internal/platform/config"
	"hidegrade/internal/platform/logger"
	"hidegrade/internal/platform/metrics"
	phttp "hidegrade/internal/platform/net/http"
	"hidegrade/internal/platform/store"
	ptime "hidegrade/internal/platform/time"

	"hidegrade/internal/modkit"
	"hidegrade/internal/modkit/httpkit"
	"hidegrade/internal/modkit/module"
	"hidegrade/internal/modkit/swaggerkit"

	analyticsdomain "hidegrade/internal/services/api/analytics/domain"
	analyticsmod "hidegrade/internal/services/api/analytics/module"
	metamod "hidegrade/internal/services/api/meta/module"
	recordsmod "hidegrade/internal/services/records/module"

	"github.com/prometheus/client_golang/prometheus"
)

// Options are the API options
type Options struct {
	// Config is scoped to CORE_API_
	Config config.Conf
	Store  *store.Store
	Logger logger.Logger

	// Auth resolves bearer tokens to owners, nil leaves every route open
	Auth *httpkit.Port

	// Registry receives every collector and backs /metrics, nil uses the default registry
	Registry *prometheus.Registry

	Clock    ptime.Clock
	Location *time.Location

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	var (
		reg      prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opt.Registry != nil {
		reg, gatherer = opt.Registry, opt.Registry
	}
	if opt.Clock == nil {
		opt.Clock = ptime.System()
	}

	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Reg:   reg,
		Clock: opt.Clock,
		Loc:   opt.Location,
	}

	records := recordsmod.New(deps)
	analytics := analyticsmod.New(deps, modkit.WithPorts(analyticsmod.Ports{
		Records: module.MustPortsOf[analyticsdomain.RecordSource](records),
	}))

	public := []module.Module{metamod.New(deps)}
	private := []module.Module{records, analytics}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxInFlight: opt.Config.MayInt("MAX_IN_FLIGHT", 0),
		Observe:     metrics.NewHTTP(reg).Middleware,
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	r.Handle("/metrics", metrics.Handler(gatherer))

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range public {
			m.MountRoutes(api)
		}
		httpkit.Protected(api, opt.Auth, func(pr httpkit.Router) {
			for _, m := range private {
				m.MountRoutes(pr)
			}
		})
	})
}
