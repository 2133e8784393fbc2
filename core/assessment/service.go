package assessment

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/volatiletech/null/v8"

	"github.com/ylearn/ylearn/core"
	"github.com/ylearn/ylearn/core/user"
)

var (
	// errors
	ErrNotFound         = errors.New("assessment not found")
	ErrAlreadySubmitted = errors.New("assessment has already been submitted")
)

type (
	Repository interface {
		QueryAllAssessments() ([]Assessment, error)
		GetAssessmentByID(id string) (Assessment, error)
		QueryAssessmentsByCourseID(courseID string) ([]Assessment, error)
		// FilterAssessments applies AND operation on available QueryFilter
		// fields, preserving the catalog order. QueryFilter.Search does a
		// case-insensitive match on one of Assessment.Title or
		// Assessment.Description; Status and Type match exactly unless set
		// to FilterAll.
		FilterAssessments(filter QueryFilter) ([]Assessment, error)
		UpdateAssessment(a Assessment) (Assessment, error)
	}

	// Notifier is told about accepted submissions so it can fan out
	// confirmations.
	Notifier interface {
		SubmissionReceived(usr user.User, a Assessment)
	}

	Service struct {
		repo     Repository
		notifier Notifier
		latency  time.Duration
		nowFunc  func() time.Time
	}
)

func NewService(repo Repository, notifier Notifier, conf *core.Config) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		latency:  conf.SubmitLatency,
		nowFunc:  time.Now,
	}
}

func (svc *Service) QueryAll() ([]Assessment, error) {
	return svc.repo.QueryAllAssessments()
}

func (svc *Service) GetByID(id string) (Assessment, error) {
	return svc.repo.GetAssessmentByID(id)
}

func (svc *Service) QueryForCourse(courseID string) ([]Assessment, error) {
	return svc.repo.QueryAssessmentsByCourseID(courseID)
}

func (svc *Service) Filter(filter QueryFilter) ([]Assessment, error) {
	filter.Clean()
	return svc.repo.FilterAssessments(filter)
}

// NextDue returns upcoming and open assessments due after now, soonest
// first. This is the only place an explicit sort is applied.
func (svc *Service) NextDue(limit int) ([]Assessment, error) {
	all, err := svc.repo.QueryAllAssessments()
	if err != nil {
		return nil, err
	}

	now := svc.nowFunc()
	due := make([]Assessment, 0, len(all))
	for _, a := range all {
		if (a.Status == StatusUpcoming || a.Status == StatusOpen) && a.DueDate.After(now) {
			due = append(due, a)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].DueDate.Before(due[j].DueDate) })

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// Submit applies the submission command to the in-memory record: status
// becomes submitted, the submission date is stamped and a mock
// plagiarism-similarity score is attached. Nothing is persisted beyond the
// process; the fixed delay mimics the upload round trip.
// TODO: reconcile with a real assessment backend once one exists.
func (svc *Service) Submit(usr user.User, sub Submission) (Assessment, error) {
	time.Sleep(svc.latency)

	a, err := svc.repo.GetAssessmentByID(sub.AssessmentID)
	if err != nil {
		return Assessment{}, err
	}
	if a.Status == StatusSubmitted || a.Status == StatusGraded {
		return Assessment{}, core.NewValidationError(ErrAlreadySubmitted)
	}

	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = svc.nowFunc().UTC()
	}
	a.Status = StatusSubmitted
	a.SubmissionDate = null.TimeFrom(sub.SubmittedAt)
	a.PlagiarismScore = null.IntFrom(similarityScore(sub.Text, a.Description))

	a, err = svc.repo.UpdateAssessment(a)
	if err != nil {
		return Assessment{}, err
	}

	if svc.notifier != nil {
		svc.notifier.SubmissionReceived(usr, a)
	}
	return a, nil
}

// similarityScore is the demo's stand-in for a plagiarism check: a diff
// ratio between the submitted text and the assessment description,
// expressed as an integer percentage.
func similarityScore(text, reference string) int {
	if text == "" || reference == "" {
		return 0
	}
	m := difflib.NewMatcher(
		strings.Split(strings.ToLower(text), ""),
		strings.Split(strings.ToLower(reference), ""),
	)
	return int(math.Round(m.QuickRatio() * 100))
}
