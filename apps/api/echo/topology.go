package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ylearn/ylearn/core/user"
)

type topologyApi struct {
	deps *Deps
}

func registerTopologyAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *Deps) {
	api := topologyApi{deps: deps}

	tg := g.Group("/architecture", jwt)
	tg.GET("", api.graph)
	tg.GET("/status", api.status)

	fg := tg.Group("/failure", capabilityMiddleware(user.CapSimulateFailure))
	fg.POST("", api.simulateFailure)
	fg.DELETE("", api.clearFailure)
}

// Handlers

func (api *topologyApi) graph(ctx echo.Context) error {
	g, err := api.deps.TopologySvc.Graph()
	if err != nil {
		return errors.Wrap(err, "getting topology graph")
	}
	return ctx.JSON(http.StatusOK, g)
}

func (api *topologyApi) status(ctx echo.Context) error {
	counts, err := api.deps.TopologySvc.Counts()
	if err != nil {
		return errors.Wrap(err, "counting node statuses")
	}
	return ctx.JSON(http.StatusOK, counts)
}

func (api *topologyApi) simulateFailure(ctx echo.Context) error {
	g, err := api.deps.TopologySvc.SimulateFailure()
	if err != nil {
		return errors.Wrap(err, "simulating failure")
	}
	return ctx.JSON(http.StatusOK, g)
}

func (api *topologyApi) clearFailure(ctx echo.Context) error {
	g, err := api.deps.TopologySvc.ClearFailure()
	if err != nil {
		return errors.Wrap(err, "clearing failure")
	}
	return ctx.JSON(http.StatusOK, g)
}
