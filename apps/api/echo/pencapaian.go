package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/pencapaian"
)

type pencapaianApi struct {
	svc     *pencapaian.Service
	metrics *metrics
}

func registerPencapaianAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *pencapaian.Service, m *metrics) {
	api := pencapaianApi{svc: svc, metrics: m}

	pg := g.Group("/pencapaian", jwt)
	pg.GET("/:homeroom_id", api.query)
	pg.GET("/:homeroom_id/:id", api.retrieve)
	pg.POST("", api.create)
	pg.PUT("/:id", api.update)
	pg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *pencapaianApi) query(ctx echo.Context) error {
	hrID, err := paramID(ctx, "homeroom_id", homeroom.ErrNotFound)
	if err != nil {
		return err
	}
	achievements, err := api.svc.Query(ctx.Request().Context(), hrID)
	if err != nil {
		return errors.Wrap(err, "querying achievements")
	}
	return sendData(ctx, achievements)
}

func (api *pencapaianApi) retrieve(ctx echo.Context) error {
	id, err := scopedID(ctx, pencapaian.ErrNotFound)
	if err != nil {
		return err
	}
	a, err := api.svc.Get(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding achievement by ID")
	}
	return sendData(ctx, a)
}

func (api *pencapaianApi) create(ctx echo.Context) error {
	var data pencapaian.NewAchievement
	if err := bindBody(ctx, &data); err != nil {
		return err
	}
	id, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating achievement")
	}
	api.metrics.recordCreated("pencapaian")
	return sendCreated(ctx, "Pencapaian berjaya ditambah", id, nil)
}

func (api *pencapaianApi) update(ctx echo.Context) error {
	id, err := paramID(ctx, "id", pencapaian.ErrNotFound)
	if err != nil {
		return err
	}
	var data pencapaian.NewAchievement
	if err = bindBody(ctx, &data); err != nil {
		return err
	}
	if err = api.svc.Update(ctx.Request().Context(), id, data); err != nil {
		return errors.Wrap(err, "updating achievement")
	}
	return sendMessage(ctx, "Pencapaian berjaya dikemaskini")
}

func (api *pencapaianApi) destroy(ctx echo.Context) error {
	id, err := paramID(ctx, "id", pencapaian.ErrNotFound)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting achievement")
	}
	return sendMessage(ctx, "Pencapaian berjaya dipadam")
}
