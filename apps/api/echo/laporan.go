package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core/laporan"
)

type laporanApi struct {
	svc     *laporan.Service
	metrics *metrics
}

func registerLaporanAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *laporan.Service, m *metrics) {
	api := laporanApi{svc: svc, metrics: m}

	g.GET("/statistik", api.stats, jwt)

	lg := g.Group("/laporan", jwt)
	lg.GET("", api.query)
	lg.GET("/:id", api.retrieve)
	lg.POST("", api.create, adminMiddleware)
	lg.PUT("/:id", api.update, adminMiddleware)
	lg.DELETE("/:id", api.archive, adminMiddleware)
}

// Handlers

func (api *laporanApi) query(ctx echo.Context) error {
	reports, err := api.svc.Query(ctx.Request().Context(), bindReportFilter(ctx))
	if err != nil {
		return errors.Wrap(err, "querying reports")
	}
	return sendData(ctx, reports)
}

func (api *laporanApi) retrieve(ctx echo.Context) error {
	id, err := paramID(ctx, "id", laporan.ErrNotFound)
	if err != nil {
		return err
	}
	rep, err := api.svc.Get(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding report by ID")
	}
	return sendData(ctx, rep)
}

func (api *laporanApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	userID, err := claims.UserID()
	if err != nil {
		return errInvalidToken.WithInternal(err)
	}

	var data laporan.NewReport
	if err = bindBody(ctx, &data); err != nil {
		return err
	}
	id, err := api.svc.Create(ctx.Request().Context(), data, userID)
	if err != nil {
		return errors.Wrap(err, "creating report")
	}
	api.metrics.recordCreated("laporan")
	return sendCreated(ctx, "Laporan berjaya ditambah", id, nil)
}

func (api *laporanApi) update(ctx echo.Context) error {
	id, err := paramID(ctx, "id", laporan.ErrNotFound)
	if err != nil {
		return err
	}
	var data laporan.NewReport
	if err = bindBody(ctx, &data); err != nil {
		return err
	}
	if err = api.svc.Update(ctx.Request().Context(), id, data); err != nil {
		return errors.Wrap(err, "updating report")
	}
	return sendMessage(ctx, "Laporan berjaya dikemaskini")
}

func (api *laporanApi) archive(ctx echo.Context) error {
	id, err := paramID(ctx, "id", laporan.ErrNotFound)
	if err != nil {
		return err
	}
	if err = api.svc.Archive(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "archiving report")
	}
	return sendMessage(ctx, "Laporan berjaya diarkibkan")
}

func (api *laporanApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats(ctx.Request().Context(), queryHomeroomID(ctx))
	if err != nil {
		return errors.Wrap(err, "computing report stats")
	}
	return sendData(ctx, stats)
}
