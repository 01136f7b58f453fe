// Package domain holds DTOs and ports for the analytics API
package domain

import (
	"time"

	"hidegrade/internal/core/analytics"
)

// Range is an inclusive pair of local calendar dates
type Range struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2024-06-01"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02" example:"2024-06-07"`
}

// SummaryInput asks for the metrics of one range
// TZ is the viewer calendar, empty means the server default
type SummaryInput struct {
	Range Range  `json:"range"`
	TZ    string `json:"tz,omitempty" validate:"omitempty,timezone" example:"America/Sao_Paulo"`
}

// DefaultRange is the range the dashboard opens on
type DefaultRange struct {
	Start analytics.DateKey `json:"start" example:"2024-06-01"`
	End   analytics.DateKey `json:"end"   example:"2024-06-07"`
	TZ    string            `json:"tz"    example:"America/Sao_Paulo"`
}

// Published is a board entry, never mutated after it is stored
type Published struct {
	Generation uint64           `json:"generation" example:"42"`
	ComputedAt time.Time        `json:"computed_at"`
	TZ         string           `json:"tz" example:"America/Sao_Paulo"`
	Result     analytics.Result `json:"result"`
}
