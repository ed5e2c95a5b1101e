package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core/ahli"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
)

type ahliApi struct {
	svc     *ahli.Service
	metrics *metrics
}

func registerAhliAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *ahli.Service, m *metrics) {
	api := ahliApi{svc: svc, metrics: m}

	ag := g.Group("/ahli", jwt)
	ag.GET("/:homeroom_id", api.query)
	ag.GET("/:homeroom_id/:id", api.retrieve)
	ag.POST("", api.create)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *ahliApi) query(ctx echo.Context) error {
	hrID, err := paramID(ctx, "homeroom_id", homeroom.ErrNotFound)
	if err != nil {
		return err
	}
	members, err := api.svc.Query(ctx.Request().Context(), hrID)
	if err != nil {
		return errors.Wrap(err, "querying members")
	}
	return sendData(ctx, members)
}

func (api *ahliApi) retrieve(ctx echo.Context) error {
	id, err := scopedID(ctx, ahli.ErrNotFound)
	if err != nil {
		return err
	}
	m, err := api.svc.Get(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding member by ID")
	}
	return sendData(ctx, m)
}

func (api *ahliApi) create(ctx echo.Context) error {
	var data ahli.NewMember
	if err := bindBody(ctx, &data); err != nil {
		return err
	}
	m, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating member")
	}
	api.metrics.recordCreated("ahli")
	return sendCreated(ctx, "Ahli berjaya ditambah", m.ID, m)
}

func (api *ahliApi) update(ctx echo.Context) error {
	id, err := paramID(ctx, "id", ahli.ErrNotFound)
	if err != nil {
		return err
	}
	var data ahli.NewMember
	if err = bindBody(ctx, &data); err != nil {
		return err
	}
	if err = api.svc.Update(ctx.Request().Context(), id, data); err != nil {
		return errors.Wrap(err, "updating member")
	}
	return sendMessage(ctx, "Ahli berjaya dikemaskini")
}

func (api *ahliApi) destroy(ctx echo.Context) error {
	id, err := paramID(ctx, "id", ahli.ErrNotFound)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting member")
	}
	return sendMessage(ctx, "Ahli berjaya dipadam")
}
