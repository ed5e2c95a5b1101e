package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core/aktiviti"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
)

// aktivitiApi serves one activity kind under /aktiviti-<kind>.
type aktivitiApi struct {
	kind    aktiviti.Kind
	svc     *aktiviti.Service
	metrics *metrics
}

func registerAktivitiAPI(g *echo.Group, jwt echo.MiddlewareFunc, kind aktiviti.Kind, svc *aktiviti.Service, m *metrics) {
	api := aktivitiApi{kind: kind, svc: svc, metrics: m}

	ag := g.Group("/aktiviti-"+string(kind), jwt)
	ag.GET("/:homeroom_id", api.query)
	ag.GET("/:homeroom_id/:id", api.retrieve)
	ag.POST("", api.create)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *aktivitiApi) query(ctx echo.Context) error {
	hrID, err := paramID(ctx, "homeroom_id", homeroom.ErrNotFound)
	if err != nil {
		return err
	}
	activities, err := api.svc.Query(ctx.Request().Context(), api.kind, hrID)
	if err != nil {
		return errors.Wrapf(err, "querying %s activities", api.kind)
	}
	return sendData(ctx, activities)
}

func (api *aktivitiApi) retrieve(ctx echo.Context) error {
	id, err := scopedID(ctx, aktiviti.ErrNotFound)
	if err != nil {
		return err
	}
	a, err := api.svc.Get(ctx.Request().Context(), api.kind, id)
	if err != nil {
		return errors.Wrapf(err, "finding %s activity by ID", api.kind)
	}
	return sendData(ctx, a)
}

func (api *aktivitiApi) create(ctx echo.Context) error {
	var data aktiviti.NewActivity
	if err := bindBody(ctx, &data); err != nil {
		return err
	}
	id, err := api.svc.Create(ctx.Request().Context(), api.kind, data)
	if err != nil {
		return errors.Wrapf(err, "creating %s activity", api.kind)
	}
	api.metrics.recordCreated("aktiviti-" + string(api.kind))
	return sendCreated(ctx, "Aktiviti berjaya ditambah", id, nil)
}

func (api *aktivitiApi) update(ctx echo.Context) error {
	id, err := paramID(ctx, "id", aktiviti.ErrNotFound)
	if err != nil {
		return err
	}
	var data aktiviti.NewActivity
	if err = bindBody(ctx, &data); err != nil {
		return err
	}
	if err = api.svc.Update(ctx.Request().Context(), api.kind, id, data); err != nil {
		return errors.Wrapf(err, "updating %s activity", api.kind)
	}
	return sendMessage(ctx, "Aktiviti berjaya dikemaskini")
}

func (api *aktivitiApi) destroy(ctx echo.Context) error {
	id, err := paramID(ctx, "id", aktiviti.ErrNotFound)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), api.kind, id); err != nil {
		return errors.Wrapf(err, "deleting %s activity", api.kind)
	}
	return sendMessage(ctx, "Aktiviti berjaya dipadam")
}
