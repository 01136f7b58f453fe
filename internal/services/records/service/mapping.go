package service

import (
	"hidegrade/internal/core/analytics"
	"hidegrade/internal/services/records/domain"
	"hidegrade/internal/services/records/repo"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toDomain(r repo.Row) domain.Record {
	out := domain.Record{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		LotID:       r.LotID,
		ImageURL:    r.ImageURL,
		StoragePath: r.StoragePath,
		Notes:       r.Notes,
		Status:      r.Status,
		Timestamp:   r.CreatedAt.UnixMilli(),
	}
	if r.Status != domain.StatusCompleted {
		return out
	}
	res := &domain.Result{
		Quality:       deref(r.Quality),
		Defects:       append([]string{}, r.Defects...),
		DefectsVisual: make([]domain.VisualDefect, 0, len(r.Visual)),
		Confidence:    deref(r.Confidence),
		Description:   deref(r.Description),
	}
	for _, v := range r.Visual {
		res.DefectsVisual = append(res.DefectsVisual, domain.VisualDefect{Type: v.Type, Box: v.Box})
	}
	out.Result = res
	return out
}

func toAnalytics(r repo.Row) analytics.Record {
	out := analytics.Record{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		LotID:       r.LotID,
		TimestampMs: r.CreatedAt.UnixMilli(),
		Status:      analytics.Status(r.Status),
	}
	if r.Status == domain.StatusCompleted {
		out.Result = &analytics.Grading{
			QualityRaw:  deref(r.Quality),
			Confidence:  deref(r.Confidence),
			DefectNames: r.Defects,
			Description: deref(r.Description),
		}
	}
	return out
}
