package sqlxrepos

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/laporan"
)

const reportSelect = `
	SELECT l.id, l.homeroom_id, l.tarikh_laporan, l.jenis_laporan, l.tajuk, l.perkara, l.status,
		l.created_by, l.created_at, l.updated_at,
		h.nama_homeroom, h.tingkatan, u.nama_penuh AS created_by_name
	FROM laporan l
	JOIN homeroom h ON h.id = l.homeroom_id
	JOIN users u ON u.id = l.created_by`

var reportOrdering = core.OrderBy(
	core.DBOrdering{Field: "l.tarikh_laporan"},
	core.DBOrdering{Field: "l.created_at"},
	core.DBOrdering{Field: "l.id"},
)

type reportRepository struct {
	repository
}

var _ laporan.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(db core.DB) *reportRepository {
	return &reportRepository{repository{db: db}}
}

// reportWhere builds the filter shared by lists and stats.
func reportWhere(prefix string, filter laporan.QueryFilter) (string, []interface{}) {
	conds := []string{prefix + "status = ?"}
	args := []interface{}{filter.Status}
	if filter.HomeroomID > 0 {
		conds = append(conds, prefix+"homeroom_id = ?")
		args = append(args, filter.HomeroomID)
	}
	if filter.Jenis != "" {
		conds = append(conds, prefix+"jenis_laporan = ?")
		args = append(args, filter.Jenis)
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (repo reportRepository) QueryReports(ctx context.Context, filter laporan.QueryFilter) ([]laporan.Report, error) {
	where, args := reportWhere("l.", filter)
	q := repo.db.Rebind(reportSelect + where + " ORDER BY " + reportOrdering)

	var reps []laporan.Report
	if err := repo.db.SelectContext(ctx, &reps, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying reports")
	}
	return nonNil(reps), nil
}

func (repo reportRepository) GetReportByID(ctx context.Context, id int64) (laporan.Report, error) {
	var rep laporan.Report
	if err := repo.db.GetContext(ctx, &rep, repo.db.Rebind(reportSelect+" WHERE l.id = ?"), id); err != nil {
		return laporan.Report{}, trapNoRowsErr(err, laporan.ErrNotFound, "finding report by ID")
	}
	return rep, nil
}

func (repo reportRepository) CreateReport(ctx context.Context, rep laporan.Report) (int64, error) {
	q := repo.db.Rebind(`
		INSERT INTO laporan (homeroom_id, tarikh_laporan, jenis_laporan, tajuk, perkara, status, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)
	var id int64
	err := repo.db.GetContext(ctx, &id, q,
		rep.HomeroomID, rep.TarikhLaporan, rep.JenisLaporan, rep.Tajuk, rep.Perkara, rep.Status,
		rep.CreatedBy, rep.CreatedAt, rep.UpdatedAt)
	if err != nil {
		return 0, errors.Wrap(err, "inserting report")
	}
	return id, nil
}

func (repo reportRepository) UpdateReport(ctx context.Context, rep laporan.Report) error {
	q := repo.db.Rebind(`
		UPDATE laporan
		SET homeroom_id = ?, tarikh_laporan = ?, jenis_laporan = ?, tajuk = ?, perkara = ?, updated_at = ?
		WHERE id = ?`)
	res, err := repo.db.ExecContext(ctx, q,
		rep.HomeroomID, rep.TarikhLaporan, rep.JenisLaporan, rep.Tajuk, rep.Perkara, rep.UpdatedAt, rep.ID)
	if err != nil {
		return errors.Wrap(err, "updating report")
	}
	return checkAffected(res, laporan.ErrNotFound, "updating report")
}

func (repo reportRepository) SetReportStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	res, err := repo.db.ExecContext(ctx,
		repo.db.Rebind("UPDATE laporan SET status = ?, updated_at = ? WHERE id = ?"), status, updatedAt, id)
	if err != nil {
		return errors.Wrap(err, "setting report status")
	}
	return checkAffected(res, laporan.ErrNotFound, "setting report status")
}

func (repo reportRepository) ReportStats(ctx context.Context, homeroomID int64) (laporan.Stats, error) {
	where, args := reportWhere("", laporan.QueryFilter{HomeroomID: homeroomID, Status: laporan.StatusAktif})

	var stats laporan.Stats
	if err := repo.db.GetContext(ctx, &stats.Total, repo.db.Rebind("SELECT COUNT(*) FROM laporan"+where), args...); err != nil {
		return laporan.Stats{}, errors.Wrap(err, "counting reports")
	}
	q := repo.db.Rebind("SELECT jenis_laporan, COUNT(*) AS count FROM laporan" + where +
		" GROUP BY jenis_laporan ORDER BY count DESC, jenis_laporan")
	if err := repo.db.SelectContext(ctx, &stats.ByJenis, q, args...); err != nil {
		return laporan.Stats{}, errors.Wrap(err, "counting reports by jenis")
	}
	stats.ByJenis = nonNil(stats.ByJenis)
	return stats, nil
}
