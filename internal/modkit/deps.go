package modkit

import (
	"time"

	"hidegrade/internal/modkit/repokit"
	"hidegrade/internal/platform/config"
	"hidegrade/internal/platform/logger"
	ptime "hidegrade/internal/platform/time"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps are the shared dependencies every module constructor receives
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner

	// Reg receives module collectors, nil means the default registerer
	Reg prometheus.Registerer

	// Clock and Loc default to the wall clock and time.Local
	Clock ptime.Clock
	Loc   *time.Location
}

// Location returns Loc or time.Local
func (d Deps) Location() *time.Location {
	if d.Loc == nil {
		return time.Local
	}
	return d.Loc
}
