package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ylearn/ylearn/core/course"
	"github.com/ylearn/ylearn/core/grade"
)

type courseApi struct {
	deps *Deps
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *Deps) {
	api := courseApi{deps: deps}

	cg := g.Group("/courses", jwt)
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)
	cg.GET("/:id/assessments", api.queryAssessments)
	cg.GET("/:id/progress", api.progress)
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	filter := new(course.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	var (
		courses []course.Course
		err     error
	)
	if filter.IsEmpty() {
		usr, uErr := getContextUser(ctx, api.deps.UserSvc)
		if uErr != nil {
			return errors.Wrap(uErr, "getting context user")
		}
		courses, err = api.deps.CourseSvc.QueryForUser(usr.Role, usr.ID)
	} else {
		courses, err = api.deps.CourseSvc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	crs, err := api.deps.CourseSvc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) queryAssessments(ctx echo.Context) error {
	crs, err := api.deps.CourseSvc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}

	assessments, err := api.deps.AssessmentSvc.QueryForCourse(crs.ID)
	if err != nil {
		return errors.Wrap(err, "querying course assessments")
	}
	return ctx.JSON(http.StatusOK, assessments)
}

func (api *courseApi) progress(ctx echo.Context) error {
	crs, err := api.deps.CourseSvc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}

	assessments, err := api.deps.AssessmentSvc.QueryForCourse(crs.ID)
	if err != nil {
		return errors.Wrap(err, "querying course assessments")
	}

	var completed int
	for _, a := range assessments {
		if a.IsCompleted() {
			completed++
		}
	}
	return ctx.JSON(http.StatusOK, ProgressResponse{
		CourseID:   crs.ID,
		Completed:  completed,
		Total:      len(assessments),
		Percentage: grade.CourseProgress(assessments),
	})
}

type ProgressResponse struct {
	CourseID   string `json:"course_id"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}
