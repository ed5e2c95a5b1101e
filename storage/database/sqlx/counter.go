package sqlxrepos

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
)

// ordinal describes a per-homeroom sequence: the counter name and the column it numbers.
type ordinal struct {
	name   string
	table  string
	column string
}

var (
	bilanganAhli = ordinal{name: "ahli_homeroom.bilangan", table: "ahli_homeroom", column: "bilangan"}
	pertemuanKe  = ordinal{name: "laporan_mingguan.pertemuan_ke", table: "laporan_mingguan", column: "pertemuan_ke"}
)

// next increments and returns the counter of the homeroom in one statement.
// The counter starts from the current maximum of the column, and never goes back:
// numbers freed by deletes are not reused.
// It must run in the same transaction as the insert using the value.
func (o ordinal) next(ctx context.Context, exec core.DBExecutor, homeroomID int64) (int64, error) {
	q := fmt.Sprintf(`
		INSERT INTO homeroom_counter (homeroom_id, nama, nilai)
		VALUES (?, ?, (SELECT COALESCE(MAX(%s), 0) + 1 FROM %s WHERE homeroom_id = ?))
		ON CONFLICT (homeroom_id, nama) DO UPDATE SET nilai = homeroom_counter.nilai + 1
		RETURNING nilai`, o.column, o.table)

	var n int64
	if err := exec.GetContext(ctx, &n, exec.Rebind(q), homeroomID, o.name, homeroomID); err != nil {
		return 0, errors.Wrapf(err, "incrementing %s", o.name)
	}
	return n, nil
}
