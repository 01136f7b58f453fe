package analytics

import (
	"math"
	"sort"
	"time"

	"hidegrade/internal/core/normalize"
)

// DefectCount is one row of the defect frequency table
type DefectCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DefectTable counts defect names merged case insensitively, in first seen order
type DefectTable struct {
	index   map[string]int
	entries []DefectCount
}

// Add counts one occurrence of name and reports whether it did, blank names are not defects
func (t *DefectTable) Add(name string) bool {
	key := normalize.Key(name)
	if key == "" {
		return false
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[key]; ok {
		t.entries[i].Count++
		return true
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, DefectCount{Name: normalize.Display(key), Count: 1})
	return true
}

// Len is the number of distinct names
func (t *DefectTable) Len() int { return len(t.entries) }

// Top returns the n most frequent names, count descending, ties keep first seen order
// n <= 0 returns every entry
func (t *DefectTable) Top(n int) []DefectCount {
	out := make([]DefectCount, len(t.entries))
	copy(out, t.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Totals is the accumulator of a single aggregation pass
type Totals struct {
	Records         int
	Pending         int
	Errors          int
	Completed       int
	Grades          GradeCounts
	Approved        int
	Rejected        int
	ConfidenceSum   float64
	Defects         int
	CriticalDefects int
	Frequency       DefectTable
}

type accumulator struct {
	buckets []DayBucket
	index   map[DateKey]int
	totals  Totals
	loc     *time.Location
}

func newAccumulator(buckets []DayBucket, loc *time.Location) accumulator {
	acc := accumulator{
		buckets: make([]DayBucket, len(buckets)),
		index:   make(map[DateKey]int, len(buckets)),
		loc:     loc,
	}
	copy(acc.buckets, buckets)
	for i, b := range acc.buckets {
		acc.index[b.Key] = i
	}
	return acc
}

func (acc accumulator) step(r Record) accumulator {
	t := &acc.totals
	t.Records++

	var day *DayBucket
	if i, ok := acc.index[KeyFromMillis(r.TimestampMs, acc.loc)]; ok {
		day = &acc.buckets[i]
		day.Total++
	}

	switch r.Status {
	case StatusPending:
		t.Pending++
	case StatusError:
		t.Errors++
	}

	res, ok := r.completed()
	if !ok {
		return acc
	}
	g := Classify(res.QualityRaw)
	if day != nil {
		day.inc(g)
	}
	t.Grades.inc(g)
	t.Completed++
	if g.Approved() {
		t.Approved++
	}
	if g == GradeR {
		t.Rejected++
	}
	t.ConfidenceSum += finite(res.Confidence)

	for _, name := range res.DefectNames {
		if !t.Frequency.Add(name) {
			continue
		}
		t.Defects++
		if g.Critical() {
			t.CriticalDefects++
		}
	}
	return acc
}

// Aggregate folds records into a copy of buckets and returns the running totals
// records are expected to be filtered to the range already, a record whose day has
// no bucket still counts toward the totals
func Aggregate(records []Record, buckets []DayBucket, loc *time.Location) ([]DayBucket, Totals) {
	acc := newAccumulator(buckets, loc)
	for _, r := range records {
		acc = acc.step(r)
	}
	return acc.buckets, acc.totals
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
