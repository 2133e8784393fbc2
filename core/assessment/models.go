package assessment

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/ylearn/ylearn/core"
)

// Types
const (
	TypeAssignment = "assignment"
	TypeQuiz       = "quiz"
	TypeExam       = "exam"
	TypeProject    = "project"
)

// Statuses. Conceptually upcoming -> open -> submitted -> graded, with late
// as an alternate branch from open once the due date elapses unsubmitted.
// Transitions are not enforced anywhere; a submit only mutates local state.
const (
	StatusUpcoming  = "upcoming"
	StatusOpen      = "open"
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
	StatusLate      = "late"
)

// FilterAll is the sentinel value that skips a categorical predicate.
const FilterAll = "all"

type Assessment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Weight      int       `json:"weight"`
	MaxScore    float64   `json:"max_score"`

	Score           null.Float64 `json:"score,omitempty"`
	Feedback        null.String  `json:"feedback,omitempty"`
	SubmissionDate  null.Time    `json:"submission_date,omitempty"`
	PlagiarismScore null.Int     `json:"plagiarism_score,omitempty"`
}

// IsCompleted reports whether the assessment counts towards course progress.
func (a Assessment) IsCompleted() bool {
	return a.Status == StatusGraded || a.Status == StatusSubmitted
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Type   string `query:"type"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.skipStatus() && qf.skipType()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.Type = core.CleanString(qf.Type, true /* lower */)
}

func (qf *QueryFilter) skipStatus() bool { return qf.Status == "" || qf.Status == FilterAll }
func (qf *QueryFilter) skipType() bool   { return qf.Type == "" || qf.Type == FilterAll }

// Submission is the local command capturing an intended submit: applied
// immediately to the in-memory record, never reconciled with a backend.
type Submission struct {
	AssessmentID string    `json:"-"`
	Text         string    `json:"text" validate:"required"`
	SubmittedAt  time.Time `json:"-"`
}

func (s *Submission) Validate(validate *validator.Validate) error {
	s.Text = core.CleanString(s.Text)
	return validate.Struct(s)
}
