package analytics

import "strings"

// Grade is one of the five canonical quality classes, TR1 best and R rejected
type Grade string

// grades from best to worst
const (
	GradeTR1 Grade = "TR1"
	GradeTR2 Grade = "TR2"
	GradeTR3 Grade = "TR3"
	GradeTR4 Grade = "TR4"
	GradeR   Grade = "R"
)

// NoGrade is the dominant grade sentinel when nothing was graded
const NoGrade = "-"

// Grades lists every grade in rank order, also the tie break order
var Grades = [...]Grade{GradeTR1, GradeTR2, GradeTR3, GradeTR4, GradeR}

// Approved reports TR1 or TR2
func (g Grade) Approved() bool { return g == GradeTR1 || g == GradeTR2 }

// Critical reports TR4 or R, the grades whose defects count as critical
func (g Grade) Critical() bool { return g == GradeTR4 || g == GradeR }

func (g Grade) index() int {
	for i, x := range Grades {
		if x == g {
			return i
		}
	}
	return len(Grades) - 1
}

// scrap markers written by operators in Portuguese, matched case sensitive
var rejectMarkers = []string{"Rejeit", "Refugo"}

type gradeRule struct {
	match func(raw string) bool
	grade Grade
}

func equalsAny(vals ...string) func(string) bool {
	return func(raw string) bool {
		for _, v := range vals {
			if raw == v {
				return true
			}
		}
		return false
	}
}

func rejected(raw string) bool {
	if raw == "R" {
		return true
	}
	for _, m := range rejectMarkers {
		if strings.Contains(raw, m) {
			return true
		}
	}
	return false
}

// legacy letters first, then current TR codes share the same rule
var gradeRules = []gradeRule{
	{match: equalsAny("A", "TR1"), grade: GradeTR1},
	{match: equalsAny("B", "TR2"), grade: GradeTR2},
	{match: equalsAny("C", "TR3"), grade: GradeTR3},
	{match: equalsAny("D", "TR4"), grade: GradeTR4},
	{match: rejected, grade: GradeR},
}

// Classify maps a raw quality label to a Grade, anything unknown is R
func Classify(raw string) Grade {
	for _, r := range gradeRules {
		if r.match(raw) {
			return r.grade
		}
	}
	return GradeR
}
