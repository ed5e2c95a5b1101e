package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core/homeroom"
)

type homeroomApi struct {
	svc *homeroom.Service
}

func registerHomeroomAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *homeroom.Service) {
	api := homeroomApi{svc: svc}

	hg := g.Group("/homeroom", jwt)
	hg.GET("", api.query)
	hg.GET("/:id", api.retrieve)
}

func (api *homeroomApi) query(ctx echo.Context) error {
	hrs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying homerooms")
	}
	return sendData(ctx, hrs)
}

func (api *homeroomApi) retrieve(ctx echo.Context) error {
	id, err := paramID(ctx, "id", homeroom.ErrNotFound)
	if err != nil {
		return err
	}
	hr, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding homeroom by ID")
	}
	return sendData(ctx, hr)
}
