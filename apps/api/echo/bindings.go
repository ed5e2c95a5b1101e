package echoapi

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/laporan"
)

// bindBody decodes the JSON body into dest. Decoding failures are system errors, not 400s.
func bindBody(ctx echo.Context, dest interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, dest); err != nil {
		return errors.Wrapf(errMalformedBody, "%T: %v", dest, err)
	}
	return nil
}

// paramID parses the positive integer path param `name`; anything else cannot match a
// record and yields notFound.
func paramID(ctx echo.Context, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

// queryHomeroomID reads the optional homeroom_id filter; 0 means all homerooms.
func queryHomeroomID(ctx echo.Context) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(ctx.QueryParam("homeroom_id")), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func bindReportFilter(ctx echo.Context) laporan.QueryFilter {
	filter := laporan.QueryFilter{
		HomeroomID: queryHomeroomID(ctx),
		Jenis:      core.CleanString(ctx.QueryParam("jenis"), true /* lower */),
		Status:     laporan.StatusAktif,
	}
	if core.CleanString(ctx.QueryParam("status"), true /* lower */) == laporan.StatusArkib {
		filter.Status = laporan.StatusArkib
	}
	return filter
}

// scopedID reads the :id of homeroom-scoped item routes. The :homeroom_id segment must be
// numeric but is not matched against the record.
func scopedID(ctx echo.Context, notFound error) (int64, error) {
	if _, err := paramID(ctx, "homeroom_id", notFound); err != nil {
		return 0, err
	}
	return paramID(ctx, "id", notFound)
}
