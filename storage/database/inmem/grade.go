package inmemdb

import "github.com/ylearn/ylearn/core/grade"

type gradeRepository struct {
	db *DB
}

var _ grade.Repository = (*gradeRepository)(nil)

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db}
}

func (repo *gradeRepository) QueryAllGrades() ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	grades := make([]grade.Grade, len(repo.db.grades))
	copy(grades, repo.db.grades)
	return grades, nil
}

func (repo *gradeRepository) QueryGradesByStudentID(studentID string) ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matches := make([]grade.Grade, 0, len(repo.db.grades))
	for _, g := range repo.db.grades {
		if g.StudentID == studentID {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

func (repo *gradeRepository) QueryGradesByCourseID(courseID string) ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matches := make([]grade.Grade, 0, len(repo.db.grades))
	for _, g := range repo.db.grades {
		if g.CourseID == courseID {
			matches = append(matches, g)
		}
	}
	return matches, nil
}
