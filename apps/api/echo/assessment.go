package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/user"
)

const defaultNextDueLimit = 3

type assessmentApi struct {
	deps *Deps
}

func registerAssessmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *Deps) {
	api := assessmentApi{deps: deps}

	ag := g.Group("/assessments", jwt)
	ag.GET("", api.query)
	ag.GET("/next-due", api.nextDue)
	ag.GET("/:id", api.retrieve)
	ag.POST("/:id/submit", api.submit, capabilityMiddleware(user.CapSubmitAssessments))
}

// Handlers

func (api *assessmentApi) query(ctx echo.Context) error {
	filter := new(assessment.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	var (
		assessments []assessment.Assessment
		err         error
	)
	if filter.IsEmpty() {
		assessments, err = api.deps.AssessmentSvc.QueryAll()
	} else {
		assessments, err = api.deps.AssessmentSvc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying assessments")
	}
	if assessments == nil {
		assessments = []assessment.Assessment{}
	}
	return ctx.JSON(http.StatusOK, assessments)
}

func (api *assessmentApi) nextDue(ctx echo.Context) error {
	limit := defaultNextDueLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	assessments, err := api.deps.AssessmentSvc.NextDue(limit)
	if err != nil {
		return errors.Wrap(err, "querying next due assessments")
	}
	return ctx.JSON(http.StatusOK, assessments)
}

func (api *assessmentApi) retrieve(ctx echo.Context) error {
	a, err := api.deps.AssessmentSvc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assessmentApi) submit(ctx echo.Context) error {
	var data assessment.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Submission")
	}
	data.AssessmentID = ctx.Param("id")
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	a, err := api.deps.AssessmentSvc.Submit(usr, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}
