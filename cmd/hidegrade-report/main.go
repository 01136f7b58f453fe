// Command hidegrade-report prints the quality summary of one owner as JSON
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"hidegrade/internal/core/analytics"
	"hidegrade/internal/platform/config"
	"hidegrade/internal/platform/logger"
	"hidegrade/internal/platform/store"
	ptime "hidegrade/internal/platform/time"

	analyticsdomain "hidegrade/internal/services/api/analytics/domain"
	analyticssvc "hidegrade/internal/services/api/analytics/service"
	recordsrepo "hidegrade/internal/services/records/repo"
	recordssvc "hidegrade/internal/services/records/service"
)

type flags struct {
	owner   string
	start   string
	end     string
	tz      string
	days    int
	maxDays int
	top     int
	pretty  bool
}

func parseFlags(args []string) (flags, error) {
	f := flags{maxDays: analyticssvc.DefaultMaxRangeDays}
	fs := flag.NewFlagSet("hidegrade-report", flag.ContinueOnError)
	fs.StringVar(&f.owner, "owner", "", "owner id (required)")
	fs.StringVar(&f.start, "start", "", "first local date, YYYY-MM-DD")
	fs.StringVar(&f.end, "end", "", "last local date, YYYY-MM-DD")
	fs.StringVar(&f.tz, "tz", "", "IANA zone of the calendar, default CORE_API_DEFAULT_TZ or UTC")
	fs.IntVar(&f.days, "days", 7, "range length when start and end are omitted")
	fs.IntVar(&f.top, "top", analytics.DefaultTopN, "defects to list")
	fs.BoolVar(&f.pretty, "pretty", false, "indent the output")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.owner == "" {
		return f, errors.New("-owner is required")
	}
	if (f.start == "") != (f.end == "") {
		return f, errors.New("-start and -end go together")
	}
	return f, nil
}

// run loads the owner's records and writes the computed result to out
func run(ctx context.Context, f flags, src analyticsdomain.RecordSource, now time.Time, out io.Writer) error {
	loc, err := ptime.Location(f.tz, time.UTC)
	if err != nil {
		return fmt.Errorf("bad -tz: %w", err)
	}

	start, end := analytics.DefaultRange(now, loc, f.days)
	if f.start != "" {
		if start, err = analytics.ParseKey(f.start); err != nil {
			return fmt.Errorf("bad -start: %w", err)
		}
		if end, err = analytics.ParseKey(f.end); err != nil {
			return fmt.Errorf("bad -end: %w", err)
		}
	}

	if f.maxDays > 0 {
		if n := analytics.DaysBetween(start, end); n > f.maxDays {
			return fmt.Errorf("range spans %d days, at most %d allowed", n, f.maxDays)
		}
	}

	recs, err := src.ListByOwner(ctx, f.owner)
	if err != nil {
		return err
	}
	res := analytics.Compute(recs, start, end, analytics.WithLocation(loc), analytics.WithTopN(f.top))

	enc := json.NewEncoder(out)
	if f.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func main() {
	root := config.New()
	l := logger.Get()

	f, err := parseFlags(os.Args[1:])
	if err != nil {
		l.Fatal().Err(err).Msg("flags")
	}
	apiCfg := root.Prefix("CORE_API_")
	if f.tz == "" {
		f.tz = apiCfg.MayString("DEFAULT_TZ", "")
	}
	f.maxDays = apiCfg.MayInt("MAX_RANGE_DAYS", f.maxDays)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgCfg := root.Prefix("SERVICE_PGSQL_")
	pg := store.PGFromConfig(pgCfg)
	pg.URL = pgCfg.MustString("DBURL")
	pg.Enabled = true
	pg.ConnectRetries = 3
	st, err := store.Open(ctx, store.Config{AppName: "hidegrade-report", PG: pg}, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}

	src := recordssvc.New(st.PG, recordsrepo.NewPG())
	err = run(ctx, f, src, time.Now(), os.Stdout)
	_ = st.Close()
	stop()
	if err != nil {
		l.Error().Err(err).Str("owner", f.owner).Msg("report failed")
		os.Exit(1)
	}
}
