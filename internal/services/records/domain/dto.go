// Package domain holds DTOs for the inspection records http and service contracts
package domain

// Status filter values accepted by Search, ALL or empty means any
const (
	StatusAll       = "ALL"
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusError     = "ERROR"
)

// VisualDefect is a defect box drawn over the hide image
// Box holds ymin xmin ymax xmax scaled to 0..1000
type VisualDefect struct {
	Type string `json:"type" validate:"required,max=120" example:"Furo"`
	Box  [4]int `json:"box_2d" example:"120,80,240,160"`
}

// Result is the classifier output stored on a completed record
type Result struct {
	Quality       string         `json:"quality" example:"TR2"`
	Defects       []string       `json:"defects_detected" example:"Furo,Risco"`
	DefectsVisual []VisualDefect `json:"defects_visual"`
	Confidence    float64        `json:"confidence_level" example:"0.87"`
	Description   string         `json:"description" example:"two small holes near the neck"`
}

// Record is an inspection record as served to clients
type Record struct {
	ID          string  `json:"id" example:"2b0e3c4e-4f0c-4d55-9f0e-6a3c1c7b2d11"`
	OwnerID     string  `json:"owner_id" example:"user-42"`
	LotID       string  `json:"lot_id" example:"LOTE-2024-118"`
	ImageURL    string  `json:"image_url,omitempty" example:"https://cdn.example.com/hides/118.jpg"`
	StoragePath string  `json:"storage_path,omitempty" example:"hides/user-42/118.jpg"`
	Notes       string  `json:"notes,omitempty" example:"lado esquerdo"`
	Status      string  `json:"status" example:"COMPLETED"`
	Timestamp   int64   `json:"timestamp" example:"1717430400000"`
	Result      *Result `json:"result,omitempty"`
}

// CreateInput registers an uploaded hide, the record starts PENDING
type CreateInput struct {
	LotID       string `json:"lot_id" validate:"required,max=120,printable" example:"LOTE-2024-118"`
	Notes       string `json:"notes,omitempty" validate:"omitempty,max=2000" example:"lado esquerdo"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url,max=2048" example:"https://cdn.example.com/hides/118.jpg"`
	StoragePath string `json:"storage_path,omitempty" validate:"omitempty,max=512" example:"hides/user-42/118.jpg"`
}

// CompleteInput attaches the classifier answer to a pending record
type CompleteInput struct {
	Quality       string         `json:"quality" validate:"required,max=40" example:"TR2"`
	Defects       []string       `json:"defects_detected" validate:"omitempty,max=200,dive,max=120" example:"Furo,Risco"`
	DefectsVisual []VisualDefect `json:"defects_visual,omitempty" validate:"omitempty,max=200,dive"`
	Confidence    float64        `json:"confidence_level" validate:"min=0,max=1" example:"0.87"`
	Description   string         `json:"description,omitempty" validate:"omitempty,max=4000"`
}

// FailInput marks a pending record as failed
type FailInput struct {
	Reason string `json:"reason" validate:"required,max=500" example:"timeout calling classifier"`
}

// SearchInput filters the history list
// Start and End are inclusive local calendar dates in TZ, each optional
type SearchInput struct {
	LotID  string `json:"lot_id,omitempty" validate:"omitempty,max=120" example:"2024"`
	Start  string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
	End    string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-06-30"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=ALL PENDING COMPLETED ERROR" example:"ALL"`
	TZ     string `json:"tz,omitempty" validate:"omitempty,timezone" example:"America/Sao_Paulo"`
}
