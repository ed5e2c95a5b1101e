package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/mingguan"
)

type mingguanApi struct {
	svc     *mingguan.Service
	metrics *metrics
}

func registerMingguanAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *mingguan.Service, m *metrics) {
	api := mingguanApi{svc: svc, metrics: m}

	mg := g.Group("/laporan-mingguan", jwt)
	mg.GET("/:homeroom_id", api.query)
	mg.GET("/:homeroom_id/:id", api.retrieve)
	mg.POST("", api.create)
	mg.PUT("/:id", api.update)
	mg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *mingguanApi) query(ctx echo.Context) error {
	hrID, err := paramID(ctx, "homeroom_id", homeroom.ErrNotFound)
	if err != nil {
		return err
	}
	reports, err := api.svc.Query(ctx.Request().Context(), hrID)
	if err != nil {
		return errors.Wrap(err, "querying weekly reports")
	}
	return sendData(ctx, reports)
}

func (api *mingguanApi) retrieve(ctx echo.Context) error {
	id, err := scopedID(ctx, mingguan.ErrNotFound)
	if err != nil {
		return err
	}
	rep, err := api.svc.Get(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding weekly report by ID")
	}
	return sendData(ctx, rep)
}

func (api *mingguanApi) create(ctx echo.Context) error {
	var data mingguan.NewReport
	if err := bindBody(ctx, &data); err != nil {
		return err
	}
	rep, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating weekly report")
	}
	api.metrics.recordCreated("laporan-mingguan")
	return sendCreated(ctx, "Laporan mingguan berjaya ditambah", rep.ID, rep)
}

func (api *mingguanApi) update(ctx echo.Context) error {
	id, err := paramID(ctx, "id", mingguan.ErrNotFound)
	if err != nil {
		return err
	}
	var data mingguan.NewReport
	if err = bindBody(ctx, &data); err != nil {
		return err
	}
	if err = api.svc.Update(ctx.Request().Context(), id, data); err != nil {
		return errors.Wrap(err, "updating weekly report")
	}
	return sendMessage(ctx, "Laporan mingguan berjaya dikemaskini")
}

func (api *mingguanApi) destroy(ctx echo.Context) error {
	id, err := paramID(ctx, "id", mingguan.ErrNotFound)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting weekly report")
	}
	return sendMessage(ctx, "Laporan mingguan berjaya dipadam")
}
