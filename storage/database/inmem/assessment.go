package inmemdb

import (
	"strings"

	"github.com/ylearn/ylearn/core/assessment"
)

type assessmentRepository struct {
	db *DB
}

var _ assessment.Repository = (*assessmentRepository)(nil)

func NewAssessmentRepository(db *DB) assessment.Repository {
	return &assessmentRepository{db: db}
}

func (repo *assessmentRepository) QueryAllAssessments() ([]assessment.Assessment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	assessments := make([]assessment.Assessment, len(repo.db.assessments))
	copy(assessments, repo.db.assessments)
	return assessments, nil
}

func (repo *assessmentRepository) GetAssessmentByID(id string) (assessment.Assessment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, a := range repo.db.assessments {
		if a.ID == id {
			return a, nil
		}
	}
	return assessment.Assessment{}, assessment.ErrNotFound
}

func (repo *assessmentRepository) QueryAssessmentsByCourseID(courseID string) ([]assessment.Assessment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matches := make([]assessment.Assessment, 0, len(repo.db.assessments))
	for _, a := range repo.db.assessments {
		if a.CourseID == courseID {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

func (repo *assessmentRepository) FilterAssessments(filter assessment.QueryFilter) ([]assessment.Assessment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matches := make([]assessment.Assessment, 0, len(repo.db.assessments))
	search := strings.ToLower(filter.Search)
	for _, a := range repo.db.assessments {
		if search != "" && !matchesSearch(search, a.Title, a.Description) {
			continue
		}
		if filter.Status != "" && filter.Status != assessment.FilterAll && a.Status != filter.Status {
			continue
		}
		if filter.Type != "" && filter.Type != assessment.FilterAll && a.Type != filter.Type {
			continue
		}
		matches = append(matches, a)
	}
	return matches, nil
}

func (repo *assessmentRepository) UpdateAssessment(a assessment.Assessment) (assessment.Assessment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, orig := range repo.db.assessments {
		if orig.ID == a.ID {
			repo.db.assessments[i] = a
			return a, nil
		}
	}
	return assessment.Assessment{}, assessment.ErrNotFound
}
