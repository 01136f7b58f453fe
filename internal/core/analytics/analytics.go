package analytics

import "time"

// Option tunes Compute
type Option func(*options)

type options struct {
	loc  *time.Location
	topN int
}

// WithLocation sets the viewer calendar, default time.Local
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithTopN sets the ranked defect list length, default DefaultTopN
func WithTopN(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topN = n
		}
	}
}

// Result is everything the dashboard renders for one range
type Result struct {
	Start        DateKey       `json:"start"`
	End          DateKey       `json:"end"`
	Buckets      []DayBucket   `json:"buckets"`
	Snapshot     Snapshot      `json:"snapshot"`
	TopDefects   []DefectCount `json:"top_defects"`
	Distribution []GradeShare  `json:"distribution"`
	Empty        bool          `json:"empty"`
}

// Compute filters records to [start, end] in the viewer calendar and aggregates them
// records must already belong to a single owner
// end before start, or an invalid key, yields an all zero result and never an error
func Compute(records []Record, start, end DateKey, opts ...Option) Result {
	o := options{loc: time.Local, topN: DefaultTopN}
	for _, fn := range opts {
		fn(&o)
	}

	buckets := BuildBuckets(start, end)
	var inRange []Record
	if len(buckets) > 0 {
		inRange = Filter(records, start, end, o.loc)
	}

	filled, totals := Aggregate(inRange, buckets, o.loc)
	return Result{
		Start:        start,
		End:          end,
		Buckets:      filled,
		Snapshot:     Summarize(totals, len(filled)),
		TopDefects:   totals.Frequency.Top(o.topN),
		Distribution: Distribution(totals.Grades),
		Empty:        totals.Records == 0,
	}
}

// Filter keeps the records whose local DateKey falls in [start, end]
func Filter(records []Record, start, end DateKey, loc *time.Location) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if KeyFromMillis(r.TimestampMs, loc).In(start, end) {
			out = append(out, r)
		}
	}
	return out
}
