// Package repo provides postgres access for inspection records
package repo

import (
	"context"
	_ "embed"
	"time"

	"hidegrade/internal/modkit/repokit"
	perr "hidegrade/internal/platform/errors"
	"hidegrade/internal/platform/store"
)

//go:embed schema.sql
var schemaSQL string

// Visual is a stored defect box
type Visual struct {
	Type string `json:"type"`
	Box  [4]int `json:"box_2d"`
}

// Row is one inspection_records row
type Row struct {
	ID          string
	OwnerID     string
	LotID       string
	ImageURL    string
	StoragePath string
	Notes       string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Quality     *string
	Confidence  *float64
	Defects     []string
	Visual      []Visual
	Description *string
}

// Outcome is the classifier result written by Complete
type Outcome struct {
	Quality     string
	Confidence  float64
	Defects     []string
	Visual      []Visual
	Description string
}

// Filter narrows List, zero values match everything
type Filter struct {
	LotID  string
	Status string
}

// Repo is the minimal persistence surface for records
type Repo interface {
	Migrate(ctx context.Context) error
	Insert(ctx context.Context, r Row) error
	Get(ctx context.Context, owner, id string) (Row, error)
	Complete(ctx context.Context, owner, id string, o Outcome, at time.Time) (int64, error)
	Fail(ctx context.Context, owner, id, reason string, at time.Time) (int64, error)
	Delete(ctx context.Context, owner, id string) (int64, error)
	List(ctx context.Context, owner string, f Filter) ([]Row, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const selectCols = `
select id::text, owner_id, lot_id, image_url, storage_path, notes, status,
       created_at, updated_at, quality, confidence, defects, defects_visual, description
from inspection_records
`

func scanRow(r store.Row) (Row, error) {
	var out Row
	err := r.Scan(
		&out.ID, &out.OwnerID, &out.LotID, &out.ImageURL, &out.StoragePath, &out.Notes, &out.Status,
		&out.CreatedAt, &out.UpdatedAt, &out.Quality, &out.Confidence, &out.Defects, &out.Visual, &out.Description,
	)
	return out, err
}

func (r *queries) Migrate(ctx context.Context) error {
	_, err := r.q.Exec(ctx, schemaSQL)
	return perr.FromPostgres(err, "records migrate")
}

func (r *queries) Insert(ctx context.Context, row Row) error {
	const sql = `
insert into inspection_records
	(id, owner_id, lot_id, image_url, storage_path, notes, status, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $8)
`
	err := store.ExecOne(ctx, r.q, sql,
		row.ID, row.OwnerID, row.LotID, row.ImageURL, row.StoragePath, row.Notes, row.Status, row.CreatedAt)
	return perr.FromPostgres(err, "insert record")
}

func (r *queries) Get(ctx context.Context, owner, id string) (Row, error) {
	row, err := store.One(ctx, r.q, scanRow, selectCols+`where owner_id = $1 and id = $2::uuid`, owner, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return Row{}, perr.NotFoundf("record %s not found", id)
		}
		return Row{}, perr.FromPostgres(err, "get record")
	}
	return row, nil
}

// Complete only moves PENDING rows, the affected count tells the caller whether it did
func (r *queries) Complete(ctx context.Context, owner, id string, o Outcome, at time.Time) (int64, error) {
	const sql = `
update inspection_records
set status = 'COMPLETED', quality = $3, confidence = $4, defects = $5,
    defects_visual = $6, description = $7, updated_at = $8
where owner_id = $1 and id = $2::uuid and status = 'PENDING'
`
	defects := o.Defects
	if defects == nil {
		defects = []string{}
	}
	visual := o.Visual
	if visual == nil {
		visual = []Visual{}
	}
	tag, err := r.q.Exec(ctx, sql, owner, id, o.Quality, o.Confidence, defects, visual, o.Description, at)
	if err != nil {
		return 0, perr.FromPostgres(err, "complete record")
	}
	return tag.RowsAffected(), nil
}

// Fail appends the failure reason to the operator notes
func (r *queries) Fail(ctx context.Context, owner, id, reason string, at time.Time) (int64, error) {
	const sql = `
update inspection_records
set status = 'ERROR', notes = notes || ' (Erro IA: ' || $3::text || ')', updated_at = $4
where owner_id = $1 and id = $2::uuid and status = 'PENDING'
`
	tag, err := r.q.Exec(ctx, sql, owner, id, reason, at)
	if err != nil {
		return 0, perr.FromPostgres(err, "fail record")
	}
	return tag.RowsAffected(), nil
}

func (r *queries) Delete(ctx context.Context, owner, id string) (int64, error) {
	tag, err := r.q.Exec(ctx, `delete from inspection_records where owner_id = $1 and id = $2::uuid`, owner, id)
	if err != nil {
		return 0, perr.FromPostgres(err, "delete record")
	}
	return tag.RowsAffected(), nil
}

// List returns newest first
func (r *queries) List(ctx context.Context, owner string, f Filter) ([]Row, error) {
	const where = `
where owner_id = $1
and ($2::text = '' or position(lower($2::text) in lower(lot_id)) > 0)
and ($3::text = '' or status = $3::text)
order by created_at desc, id
`
	rows, err := store.Many(ctx, r.q, scanRow, selectCols+where, owner, f.LotID, f.Status)
	if err != nil {
		return nil, perr.FromPostgres(err, "list records")
	}
	return rows, nil
}
