// Package http provides http transport for inspection records
package http

import (
	stdhttp "net/http"

	"hidegrade/internal/modkit/httpkit"
	"hidegrade/internal/services/records/domain"
)

// Register mounts record endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)

	httpkit.Get(r, "/{id}", h.get)
	httpkit.Delete(r, "/{id}", h.remove)

	// classifier callbacks
	httpkit.PostJSON[domain.CompleteInput](r, "/{id}/complete", h.complete)
	httpkit.PostJSON[domain.FailInput](r, "/{id}/fail", h.fail)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /records Records recordsCreate
// @Summary Register an uploaded hide
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "Record"
// @Success 201 {object} domain.Record "created"
// @Router /records [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	rec, err := h.svc.Create(r.Context(), owner, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(rec), nil
}

// swagger:route POST /records/search Records recordsSearch
// @Summary Search the inspection history
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.SearchInput true "Filters"
// @Success 200 {array} domain.Record "ok"
// @Router /records/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Search(r.Context(), owner, in)
}

// swagger:route GET /records/{id} Records recordsGet
// @Summary Get one record
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Success 200 {object} domain.Record "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /records/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), owner, httpkit.Param(r, "id"))
}

// swagger:route DELETE /records/{id} Records recordsDelete
// @Summary Delete one record
// @Tags Records
// @Security BearerAuth
// @Param id path string true "Record id"
// @Success 204 "deleted"
// @Router /records/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), owner, httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /records/{id}/complete Records recordsComplete
// @Summary Attach the classifier result to a pending record
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Param payload body domain.CompleteInput true "Result"
// @Success 200 {object} domain.Record "ok"
// @Failure 409 {object} httpkit.Envelope "record is not pending"
// @Router /records/{id}/complete [post]
func (h *handlers) complete(r *stdhttp.Request, in domain.CompleteInput) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Complete(r.Context(), owner, httpkit.Param(r, "id"), in)
}

// swagger:route POST /records/{id}/fail Records recordsFail
// @Summary Mark a pending record as failed
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Param payload body domain.FailInput true "Failure"
// @Success 200 {object} domain.Record "ok"
// @Failure 409 {object} httpkit.Envelope "record is not pending"
// @Router /records/{id}/fail [post]
func (h *handlers) fail(r *stdhttp.Request, in domain.FailInput) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Fail(r.Context(), owner, httpkit.Param(r, "id"), in)
}
