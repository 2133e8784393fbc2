package course

import "errors"

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of
		// Course.Name, Course.Code or Course.Description.
		FilterCourses(filter QueryFilter) ([]Course, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// QueryForUser returns the courses visible to the given actor. The role and
// user id are currently ignored and the whole catalog is returned: the demo
// has no enrollment data to scope by.
func (svc *Service) QueryForUser(role, userID string) ([]Course, error) {
	_ = role
	_ = userID
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Course, error) {
	filter.Clean()
	return svc.repo.FilterCourses(filter)
}
