package domain

import (
	"context"

	"hidegrade/internal/core/analytics"
)

// RecordSource hands over every record of one owner
type RecordSource interface {
	ListByOwner(ctx context.Context, owner string) ([]analytics.Record, error)
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Summary(ctx context.Context, owner string, in SummaryInput) (analytics.Result, error)
	DefaultRange(tz string) (DefaultRange, error)
	Latest(owner string) (Published, error)
}
