package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ylearn/ylearn/core/grade"
	"github.com/ylearn/ylearn/core/user"
)

type gradeApi struct {
	deps *Deps
}

func registerGradeAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *Deps) {
	api := gradeApi{deps: deps}

	gg := g.Group("/grades", jwt)
	gg.GET("", api.query)
	gg.GET("/summary", api.summary)
	gg.GET("/export", api.export)
}

// Handlers

// query returns the caller's own grades. With ?course_id= it returns a
// course's grade sheet instead, which needs the course-grades capability.
func (api *gradeApi) query(ctx echo.Context) error {
	if courseID := ctx.QueryParam("course_id"); courseID != "" {
		claims, err := getContextClaims(ctx)
		if err != nil {
			return errors.Wrap(err, "getting context claims")
		}
		if !user.Can(user.User{Role: claims.Role}, user.CapViewCourseGrades) {
			return errHttpForbidden
		}

		grades, err := api.deps.GradeSvc.QueryForCourse(courseID)
		if err != nil {
			return errors.Wrap(err, "querying course grades")
		}
		if grades == nil {
			grades = []grade.Grade{}
		}
		return ctx.JSON(http.StatusOK, grades)
	}

	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	grades, err := api.deps.GradeSvc.QueryForStudent(usr.ID)
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	if grades == nil {
		grades = []grade.Grade{}
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) summary(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	summary, err := api.deps.GradeSvc.Summarize(usr.ID)
	if err != nil {
		return errors.Wrap(err, "summarizing grades")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *gradeApi) export(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="grades.csv"`)
	res.WriteHeader(http.StatusOK)
	return api.deps.GradeSvc.ExportCSV(usr.ID, res)
}
