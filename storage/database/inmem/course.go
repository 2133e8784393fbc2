package inmemdb

import (
	"strings"

	"github.com/ylearn/ylearn/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]course.Course, len(repo.db.courses))
	copy(courses, repo.db.courses)
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(id string) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, crs := range repo.db.courses {
		if crs.ID == id {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matches := make([]course.Course, 0, len(repo.db.courses))
	search := strings.ToLower(filter.Search)
	for _, crs := range repo.db.courses {
		if search != "" && !matchesSearch(search, crs.Name, crs.Code, crs.Description) {
			continue
		}
		matches = append(matches, crs)
	}
	return matches, nil
}

// matchesSearch reports whether any field contains the lowercased needle.
func matchesSearch(needle string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
