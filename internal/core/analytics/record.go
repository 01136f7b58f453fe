package analytics

// Status is the lifecycle state of an inspection record
type Status string

const (
	// StatusPending is set on upload, before the classifier answers
	StatusPending Status = "PENDING"
	// StatusCompleted means Result holds the grading
	StatusCompleted Status = "COMPLETED"
	// StatusError means classification failed
	StatusError Status = "ERROR"
)

// Grading is the classifier output attached to a completed record
type Grading struct {
	QualityRaw  string   `json:"quality"`
	Confidence  float64  `json:"confidence_level"`
	DefectNames []string `json:"defects_detected"`
	Description string   `json:"description,omitempty"`
}

// Record is the read-only input of the engine
type Record struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	LotID       string   `json:"lot_id"`
	TimestampMs int64    `json:"timestamp_ms"`
	Status      Status   `json:"status"`
	Result      *Grading `json:"result,omitempty"`
}

// completed returns the result when the record counts as graded
func (r Record) completed() (*Grading, bool) {
	if r.Status != StatusCompleted || r.Result == nil {
		return nil, false
	}
	return r.Result, true
}
