package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ylearn/ylearn/core/user"
)

type fakeRepository struct {
	assessments []Assessment
}

func (r *fakeRepository) QueryAllAssessments() ([]Assessment, error) {
	out := make([]Assessment, len(r.assessments))
	copy(out, r.assessments)
	return out, nil
}

func (r *fakeRepository) GetAssessmentByID(id string) (Assessment, error) {
	for _, a := range r.assessments {
		if a.ID == id {
			return a, nil
		}
	}
	return Assessment{}, ErrNotFound
}

func (r *fakeRepository) QueryAssessmentsByCourseID(courseID string) ([]Assessment, error) {
	var out []Assessment
	for _, a := range r.assessments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepository) FilterAssessments(filter QueryFilter) ([]Assessment, error) {
	return r.QueryAllAssessments()
}

func (r *fakeRepository) UpdateAssessment(a Assessment) (Assessment, error) {
	for i, orig := range r.assessments {
		if orig.ID == a.ID {
			r.assessments[i] = a
			return a, nil
		}
	}
	return Assessment{}, ErrNotFound
}

type fakeNotifier struct {
	received []Assessment
}

func (n *fakeNotifier) SubmissionReceived(usr user.User, a Assessment) {
	n.received = append(n.received, a)
}

func newTestService(repo Repository, notifier Notifier, now time.Time) *Service {
	return &Service{repo: repo, notifier: notifier, nowFunc: func() time.Time { return now }}
}

func TestService_NextDue(t *testing.T) {
	now := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepository{assessments: []Assessment{
		{ID: "past-open", Status: StatusOpen, DueDate: now.Add(-time.Hour)},
		{ID: "late", Status: StatusLate, DueDate: now.Add(time.Hour)},
		{ID: "third", Status: StatusOpen, DueDate: now.Add(72 * time.Hour)},
		{ID: "first", Status: StatusUpcoming, DueDate: now.Add(24 * time.Hour)},
		{ID: "graded", Status: StatusGraded, DueDate: now.Add(24 * time.Hour)},
		{ID: "second", Status: StatusOpen, DueDate: now.Add(48 * time.Hour)},
	}}
	svc := newTestService(repo, nil, now)

	due, err := svc.NextDue(0)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, "first", due[0].ID)
	assert.Equal(t, "second", due[1].ID)
	assert.Equal(t, "third", due[2].ID)

	due, err = svc.NextDue(2)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "first", due[0].ID)
	assert.Equal(t, "second", due[1].ID)
}

func TestService_Submit(t *testing.T) {
	now := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := &fakeRepository{assessments: []Assessment{
		{ID: "a1", CourseID: "c1", Title: "Final Project", Description: "Implement a scalable application.", Status: StatusOpen},
	}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, now)

	usr, _ := user.MockUser(user.RoleStudent)
	got, err := svc.Submit(usr, Submission{AssessmentID: "a1", Text: "My original work on the project."})
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, got.Status)
	require.True(t, got.SubmissionDate.Valid)
	assert.Equal(t, now, got.SubmissionDate.Time)
	require.True(t, got.PlagiarismScore.Valid)
	assert.GreaterOrEqual(t, got.PlagiarismScore.Int, 0)
	assert.LessOrEqual(t, got.PlagiarismScore.Int, 100)

	// mutation is applied to the record
	stored, err := repo.GetAssessmentByID("a1")
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, stored.Status)

	// and the notifier was told exactly once
	require.Len(t, notifier.received, 1)
	assert.Equal(t, "a1", notifier.received[0].ID)
}

func TestService_Submit_alreadySubmitted(t *testing.T) {
	now := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := &fakeRepository{assessments: []Assessment{
		{ID: "a1", Status: StatusSubmitted},
		{ID: "a2", Status: StatusGraded},
	}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, now)

	usr, _ := user.MockUser(user.RoleStudent)
	for _, id := range []string{"a1", "a2"} {
		_, err := svc.Submit(usr, Submission{AssessmentID: id, Text: "again"})
		require.Error(t, err)
		assert.Equal(t, ErrAlreadySubmitted.Error(), err.Error())
	}
	assert.Empty(t, notifier.received)
}

func TestService_Submit_notFound(t *testing.T) {
	svc := newTestService(&fakeRepository{}, nil, time.Now())

	usr, _ := user.MockUser(user.RoleStudent)
	_, err := svc.Submit(usr, Submission{AssessmentID: "missing", Text: "hello"})
	assert.Equal(t, ErrNotFound, err)
}

func Test_similarityScore(t *testing.T) {
	assert.Equal(t, 0, similarityScore("", "reference"))
	assert.Equal(t, 0, similarityScore("text", ""))
	assert.Equal(t, 100, similarityScore("identical text", "identical text"))

	// score is case-insensitive and bounded
	score := similarityScore("The Quick Brown Fox", "the quick brown fox")
	assert.Equal(t, 100, score)
	score = similarityScore("abc", "xyz")
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}
