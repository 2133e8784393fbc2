package grade

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Grade is the scored outcome of one student's submission for one
// assessment. One grade corresponds to one (assessment, student) pair;
// the seed data respects that, nothing enforces it.
type Grade struct {
	ID           string  `json:"id"`
	CourseID     string  `json:"course_id"`
	AssessmentID string  `json:"assessment_id"`
	StudentID    string  `json:"student_id"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"max_score"`

	Feedback       null.String `json:"feedback,omitempty"`
	SubmissionDate time.Time   `json:"submission_date"`
	GradedDate     null.Time   `json:"graded_date,omitempty"`
	GradedBy       null.String `json:"graded_by,omitempty"`
}

// Pair returns the grade's (score, max) pair for metric computation.
func (g Grade) Pair() ScorePair {
	return ScorePair{Score: g.Score, Max: g.MaxScore}
}

type (
	// CourseSummary aggregates a student's grades within one course.
	CourseSummary struct {
		CourseID   string  `json:"course_id"`
		CourseCode string  `json:"course_code"`
		CourseName string  `json:"course_name"`
		Total      float64 `json:"total"`
		Max        float64 `json:"max"`
		Percentage float64 `json:"percentage"`
		GPA        GPA     `json:"gpa"`
	}

	// Summary is the grades-page roll-up: per-course breakdown plus the
	// overall percentage and GPA across all graded work.
	Summary struct {
		Courses           []CourseSummary `json:"courses"`
		OverallPercentage float64         `json:"overall_percentage"`
		OverallGPA        GPA             `json:"overall_gpa"`
	}
)
