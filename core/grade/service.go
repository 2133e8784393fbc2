package grade

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/course"
)

var ErrNotFound = errors.New("grade not found")

// csvHeader is the exact export header the grades page produces.
var csvHeader = []string{"Course", "Assessment", "Score", "Max Score", "Percentage", "Submission Date", "Graded Date"}

const csvDateFormat = "2006-01-02"

type (
	Repository interface {
		QueryAllGrades() ([]Grade, error)
		// Both queries filter by exact ID match and preserve catalog order;
		// no matches means an empty slice, never an error.
		QueryGradesByStudentID(studentID string) ([]Grade, error)
		QueryGradesByCourseID(courseID string) ([]Grade, error)
	}

	Service struct {
		repo        Repository
		courses     course.Repository
		assessments assessment.Repository
	}
)

func NewService(repo Repository, courses course.Repository, assessments assessment.Repository) *Service {
	return &Service{repo: repo, courses: courses, assessments: assessments}
}

func (svc *Service) QueryForStudent(studentID string) ([]Grade, error) {
	return svc.repo.QueryGradesByStudentID(studentID)
}

func (svc *Service) QueryForCourse(courseID string) ([]Grade, error) {
	return svc.repo.QueryGradesByCourseID(courseID)
}

// Summarize rolls a student's grades up per course and overall. Courses
// appear in first-grade-seen order.
func (svc *Service) Summarize(studentID string) (Summary, error) {
	grades, err := svc.repo.QueryGradesByStudentID(studentID)
	if err != nil {
		return Summary{}, err
	}

	var (
		order   []string
		byCrs   = make(map[string]*CourseSummary)
		allPair []ScorePair
	)
	for _, g := range grades {
		cs, ok := byCrs[g.CourseID]
		if !ok {
			crs, err := svc.courses.GetCourseByID(g.CourseID)
			if err != nil {
				return Summary{}, pkgerrors.Wrap(err, "resolving graded course")
			}
			cs = &CourseSummary{CourseID: crs.ID, CourseCode: crs.Code, CourseName: crs.Name}
			byCrs[g.CourseID] = cs
			order = append(order, g.CourseID)
		}
		cs.Total += g.Score
		cs.Max += g.MaxScore
		allPair = append(allPair, g.Pair())
	}

	summary := Summary{Courses: make([]CourseSummary, 0, len(order))}
	for _, id := range order {
		cs := byCrs[id]
		cs.Percentage = Percentage([]ScorePair{{Score: cs.Total, Max: cs.Max}})
		cs.GPA = CalculateGPA(cs.Percentage)
		summary.Courses = append(summary.Courses, *cs)
	}
	summary.OverallPercentage = Percentage(allPair)
	summary.OverallGPA = CalculateGPA(summary.OverallPercentage)
	return summary, nil
}

// ExportCSV writes the student's grade rows as CSV. Course and assessment
// names are resolved from the catalog; missing ones are left blank rather
// than failing the export.
func (svc *Service) ExportCSV(studentID string, w io.Writer) error {
	grades, err := svc.repo.QueryGradesByStudentID(studentID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return pkgerrors.Wrap(err, "writing CSV header")
	}
	for _, g := range grades {
		var courseName, assessmentTitle string
		if crs, err := svc.courses.GetCourseByID(g.CourseID); err == nil {
			courseName = crs.Name
		}
		if a, err := svc.assessments.GetAssessmentByID(g.AssessmentID); err == nil {
			assessmentTitle = a.Title
		}

		var gradedDate string
		if g.GradedDate.Valid {
			gradedDate = g.GradedDate.Time.Format(csvDateFormat)
		}
		row := []string{
			courseName,
			assessmentTitle,
			fmt.Sprintf("%g", g.Score),
			fmt.Sprintf("%g", g.MaxScore),
			fmt.Sprintf("%.2f%%", Percentage([]ScorePair{g.Pair()})),
			g.SubmissionDate.Format(csvDateFormat),
			gradedDate,
		}
		if err := cw.Write(row); err != nil {
			return pkgerrors.Wrap(err, "writing CSV row")
		}
	}
	cw.Flush()
	return pkgerrors.Wrap(cw.Error(), "flushing CSV")
}
