package grade

import (
	"math"

	"github.com/ylearn/ylearn/core/assessment"
)

// ScorePair is a raw (score, max score) pair.
type ScorePair struct {
	Score float64
	Max   float64
}

// GPA pairs a letter grade with its numeric grade-point value.
type GPA struct {
	Letter string  `json:"letter"`
	Value  float64 `json:"value"`
}

// gpaBands maps percentage lower bounds (inclusive) to letter/GPA, highest
// band first. Below the last bound everything is an F.
var gpaBands = []struct {
	min float64
	gpa GPA
}{
	{90, GPA{"A+", 4.0}},
	{85, GPA{"A", 4.0}},
	{80, GPA{"A-", 3.7}},
	{75, GPA{"B+", 3.3}},
	{70, GPA{"B", 3.0}},
	{65, GPA{"B-", 2.7}},
	{60, GPA{"C+", 2.3}},
	{55, GPA{"C", 2.0}},
	{50, GPA{"C-", 1.7}},
	{45, GPA{"D+", 1.3}},
	{40, GPA{"D", 1.0}},
}

// Percentage computes 100 * sum(score) / sum(max) over the pairs, 0 when
// the max total is 0.
func Percentage(pairs []ScorePair) float64 {
	var total, max float64
	for _, p := range pairs {
		total += p.Score
		max += p.Max
	}
	if max <= 0 {
		return 0
	}
	return total / max * 100
}

// CalculateGPA maps a percentage onto the fixed letter/GPA table.
func CalculateGPA(percentage float64) GPA {
	for _, band := range gpaBands {
		if percentage >= band.min {
			return band.gpa
		}
	}
	return GPA{"F", 0.0}
}

// CourseProgress is the share of a course's assessments that are submitted
// or graded, as a rounded integer percentage; 0 for an empty course.
func CourseProgress(assessments []assessment.Assessment) int {
	if len(assessments) == 0 {
		return 0
	}
	var completed int
	for _, a := range assessments {
		if a.IsCompleted() {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(assessments)) * 100))
}
