// @title         hidegrade API
// @version       0.1.0
// @description   Inspection records and quality metrics for leather hide grading
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"hidegrade/internal/modkit/httpkit"
	"hidegrade/internal/modkit/repokit"
	"hidegrade/internal/platform/auth"
	"hidegrade/internal/platform/config"
	"hidegrade/internal/platform/logger"
	phttp "hidegrade/internal/platform/net/http"
	"hidegrade/internal/platform/store"
	ptime "hidegrade/internal/platform/time"

	"hidegrade/internal/services/api"
	recordsrepo "hidegrade/internal/services/records/repo"
	recordssvc "hidegrade/internal/services/records/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	authCfg := root.Prefix("AUTH_JWT_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := ptime.Location(apiCfg.MayString("DEFAULT_TZ", ""), time.UTC)
	if err != nil {
		l.Fatal().Err(err).Msg("invalid CORE_API_DEFAULT_TZ")
	}

	verifier, err := auth.NewVerifier(authCfg.MustString("SECRET"),
		auth.WithIssuer(authCfg.MayString("ISSUER", "")),
		auth.WithLeeway(authCfg.MayDuration("LEEWAY", 30*time.Second)),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("auth verifier")
	}

	pg := store.PGFromConfig(pgCfg)
	pg.URL = pgCfg.MustString("DBURL")
	pg.Enabled = true
	st, err := store.Open(ctx, store.Config{AppName: "hidegrade-api", PG: pg}, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if pgCfg.MayBool("MIGRATE", true) {
		if err := recordssvc.New(st.PG, recordsrepo.NewPG()).Migrate(ctx); err != nil {
			l.Fatal().Err(err).Msg("records migrate")
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         *l,
		Auth:           httpkit.NewPortFunc(verifier.Owner),
		Registry:       reg,
		Clock:          ptime.System(),
		Location:       loc,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", false),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		return
	}
	l.Info().Msg("bye")
}
