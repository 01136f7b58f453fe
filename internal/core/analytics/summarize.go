package analytics

// DefaultTopN is the length of the ranked defect list
const DefaultTopN = 10

// Snapshot is the headline metrics of a range
type Snapshot struct {
	TotalRecords           int     `json:"total_records"`
	AvgPerDay              float64 `json:"avg_per_day"`
	PendingCount           int     `json:"pending_count"`
	ErrorCount             int     `json:"error_count"`
	ApprovalRatePct        float64 `json:"approval_rate_pct"`
	AvgConfidencePct       float64 `json:"avg_confidence_pct"`
	DominantGrade          string  `json:"dominant_grade"`
	RejectRatePct          float64 `json:"reject_rate_pct"`
	TotalDefects           int     `json:"total_defects"`
	AvgDefectsPerCompleted float64 `json:"avg_defects_per_completed"`
	CriticalDefectCount    int     `json:"critical_defect_count"`
}

// GradeShare is one slice of the grade distribution
type GradeShare struct {
	Grade Grade `json:"grade"`
	Count int   `json:"count"`
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Summarize derives the snapshot from totals, dayCount is the number of buckets
func Summarize(t Totals, dayCount int) Snapshot {
	completed := float64(t.Completed)
	return Snapshot{
		TotalRecords:           t.Records,
		AvgPerDay:              ratio(float64(t.Records), float64(dayCount)),
		PendingCount:           t.Pending,
		ErrorCount:             t.Errors,
		ApprovalRatePct:        ratio(float64(t.Approved), completed) * 100,
		AvgConfidencePct:       ratio(t.ConfidenceSum, completed) * 100,
		DominantGrade:          DominantGrade(t.Grades),
		RejectRatePct:          ratio(float64(t.Rejected), completed) * 100,
		TotalDefects:           t.Defects,
		AvgDefectsPerCompleted: ratio(float64(t.Defects), completed),
		CriticalDefectCount:    t.CriticalDefects,
	}
}

// DominantGrade returns the grade with the strictly highest count
// equal counts keep the better grade, all zero gives NoGrade
func DominantGrade(c GradeCounts) string {
	best, bestN := NoGrade, 0
	for _, g := range Grades {
		if n := c.Of(g); n > bestN {
			best, bestN = string(g), n
		}
	}
	return best
}

// Distribution lists grades with a non zero count in rank order
func Distribution(c GradeCounts) []GradeShare {
	out := make([]GradeShare, 0, len(Grades))
	for _, g := range Grades {
		if n := c.Of(g); n > 0 {
			out = append(out, GradeShare{Grade: g, Count: n})
		}
	}
	return out
}
