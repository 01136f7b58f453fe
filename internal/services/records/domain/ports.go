package domain

import (
	"context"

	"hidegrade/internal/core/analytics"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, owner string, in CreateInput) (Record, error)
	Complete(ctx context.Context, owner, id string, in CompleteInput) (Record, error)
	Fail(ctx context.Context, owner, id string, in FailInput) (Record, error)
	Get(ctx context.Context, owner, id string) (Record, error)
	Delete(ctx context.Context, owner, id string) error
	Search(ctx context.Context, owner string, in SearchInput) ([]Record, error)
	RecordSource
}

// RecordSource hands the analytics engine every record of one owner
type RecordSource interface {
	ListByOwner(ctx context.Context, owner string) ([]analytics.Record, error)
}
