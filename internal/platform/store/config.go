package store

import (
	"time"

	"hidegrade/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs, zero picks the defaults
	ConnectRetries int
	PingTimeout    time.Duration
}

// PGFromConfig reads SERVICE_PGSQL_* style keys from c
func PGFromConfig(c config.Conf) PGConfig {
	url := c.MayString("DBURL", "")
	return PGConfig{
		Enabled:        url != "",
		URL:            url,
		MaxConns:       int32(c.MayInt("MAX_CONNS", 10)),
		LogSQL:         c.MayBool("LOG_SQL", false),
		SlowQueryMs:    c.MayInt("SLOW_MS", 200),
		ConnectRetries: c.MayInt("CONNECT_RETRIES", 0),
		PingTimeout:    c.MayDuration("PING_TIMEOUT", 0),
	}
}
