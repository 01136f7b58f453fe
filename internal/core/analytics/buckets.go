package analytics

// GradeCounts holds one counter per grade
type GradeCounts struct {
	TR1 int `json:"TR1"`
	TR2 int `json:"TR2"`
	TR3 int `json:"TR3"`
	TR4 int `json:"TR4"`
	R   int `json:"R"`
}

func (c *GradeCounts) slot(g Grade) *int {
	switch g {
	case GradeTR1:
		return &c.TR1
	case GradeTR2:
		return &c.TR2
	case GradeTR3:
		return &c.TR3
	case GradeTR4:
		return &c.TR4
	default:
		return &c.R
	}
}

func (c *GradeCounts) inc(g Grade) { *c.slot(g)++ }

// Of returns the counter for g
func (c GradeCounts) Of(g Grade) int { return *c.slot(g) }

// Sum adds all five counters
func (c GradeCounts) Sum() int { return c.TR1 + c.TR2 + c.TR3 + c.TR4 + c.R }

// DayBucket is one calendar day of the selected range
// Total counts every record of the day whatever its status, grade counters only completed ones
type DayBucket struct {
	Key   DateKey `json:"key"`
	Label string  `json:"label"`
	Total int     `json:"total"`
	GradeCounts
}

// BuildBuckets returns one zeroed bucket per day from start to end inclusive
// end before start or an unparseable key gives an empty slice
func BuildBuckets(start, end DateKey) []DayBucket {
	s, ok1 := start.civil()
	e, ok2 := end.civil()
	if !ok1 || !ok2 || e.Before(s) {
		return []DayBucket{}
	}
	out := make([]DayBucket, 0, DaysBetween(start, end))
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		k := DateKey(d.Format(keyLayout))
		out = append(out, DayBucket{Key: k, Label: k.Label()})
	}
	return out
}
