package sqlxrepos

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/mingguan"
)

var weeklyColumns = []string{
	"nama_homeroom", "tarikh", "hari", "masa", "tempat", "kehadiran", "tema", "tajuk",
	"penerangan_aktiviti", "galeri_url", "galeri_caption", "refleksi_pelajar", "refleksi_guru",
	"disediakan_oleh", "disemak_oleh",
}

func weeklyArgs(r mingguan.Report) []interface{} {
	return []interface{}{
		r.NamaHomeroom, r.Tarikh, r.Hari, r.Masa, r.Tempat, r.Kehadiran, r.Tema, r.Tajuk,
		r.PeneranganAktiviti, r.GaleriURL, r.GaleriCaption, r.RefleksiPelajar, r.RefleksiGuru,
		r.DisediakanOleh, r.DisemakOleh,
	}
}

var weeklySelect = "SELECT id, homeroom_id, pertemuan_ke, " + strings.Join(weeklyColumns, ", ") +
	", created_at, updated_at FROM laporan_mingguan"

type absence struct {
	ReportID int64 `db:"laporan_mingguan_id"`
	AhliID   int64 `db:"ahli_id"`
}

type weeklyReportRepository struct {
	repository
}

var _ mingguan.Repository = (*weeklyReportRepository)(nil) // interface compliance check

func NewWeeklyReportRepository(db core.DB) *weeklyReportRepository {
	return &weeklyReportRepository{repository{db: db}}
}

func (repo weeklyReportRepository) QueryWeeklyReports(ctx context.Context, homeroomID int64) ([]mingguan.Report, error) {
	q := repo.db.Rebind(weeklySelect + " WHERE homeroom_id = ? ORDER BY " +
		core.OrderBy(core.DBOrdering{Field: "pertemuan_ke"}))
	var reps []mingguan.Report
	if err := repo.db.SelectContext(ctx, &reps, q, homeroomID); err != nil {
		return nil, errors.Wrap(err, "querying weekly reports")
	}

	var absences []absence
	q = repo.db.Rebind(`
		SELECT k.laporan_mingguan_id, k.ahli_id
		FROM laporan_mingguan_ketidakhadiran k
		JOIN laporan_mingguan m ON m.id = k.laporan_mingguan_id
		WHERE m.homeroom_id = ?
		ORDER BY k.laporan_mingguan_id, k.ahli_id`)
	if err := repo.db.SelectContext(ctx, &absences, q, homeroomID); err != nil {
		return nil, errors.Wrap(err, "querying absences")
	}
	byReport := make(map[int64]mingguan.MemberIDs, len(reps))
	for _, a := range absences {
		byReport[a.ReportID] = append(byReport[a.ReportID], a.AhliID)
	}
	for i := range reps {
		reps[i].Ketidakhadiran = nonNil(byReport[reps[i].ID])
	}
	return nonNil(reps), nil
}

func (repo weeklyReportRepository) absences(ctx context.Context, exec core.DBExecutor, reportID int64) (mingguan.MemberIDs, error) {
	var ids []int64
	q := exec.Rebind("SELECT ahli_id FROM laporan_mingguan_ketidakhadiran WHERE laporan_mingguan_id = ? ORDER BY ahli_id")
	if err := exec.SelectContext(ctx, &ids, q, reportID); err != nil {
		return nil, errors.Wrap(err, "querying absences")
	}
	return nonNil(mingguan.MemberIDs(ids)), nil
}

func (repo weeklyReportRepository) setAbsences(ctx context.Context, tx *sqlx.Tx, reportID int64, ids mingguan.MemberIDs) error {
	_, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM laporan_mingguan_ketidakhadiran WHERE laporan_mingguan_id = ?"), reportID)
	if err != nil {
		return errors.Wrap(err, "clearing absences")
	}
	q := tx.Rebind("INSERT INTO laporan_mingguan_ketidakhadiran (laporan_mingguan_id, ahli_id) VALUES (?, ?)")
	for _, id := range ids {
		if _, err = tx.ExecContext(ctx, q, reportID, id); err != nil {
			return errors.Wrapf(err, "inserting absence of ahli %d", id)
		}
	}
	return nil
}

func (repo weeklyReportRepository) GetWeeklyReportByID(ctx context.Context, id int64) (mingguan.Report, error) {
	var rep mingguan.Report
	if err := repo.db.GetContext(ctx, &rep, repo.db.Rebind(weeklySelect+" WHERE id = ?"), id); err != nil {
		return mingguan.Report{}, trapNoRowsErr(err, mingguan.ErrNotFound, "finding weekly report by ID")
	}
	ids, err := repo.absences(ctx, repo.db, id)
	if err != nil {
		return mingguan.Report{}, err
	}
	rep.Ketidakhadiran = ids
	return rep, nil
}

func (repo weeklyReportRepository) CreateWeeklyReport(ctx context.Context, rep mingguan.Report) (mingguan.Report, error) {
	cols := append([]string{"homeroom_id", "pertemuan_ke"}, weeklyColumns...)
	cols = append(cols, "created_at", "updated_at")
	q := "INSERT INTO laporan_mingguan (" + strings.Join(cols, ", ") + ") VALUES (" + placeholders(len(cols)) + ") RETURNING id"

	err := repo.inTx(ctx, func(tx *sqlx.Tx) error {
		n, err := pertemuanKe.next(ctx, tx, rep.HomeroomID)
		if err != nil {
			return err
		}
		rep.PertemuanKe = n

		args := append([]interface{}{rep.HomeroomID, rep.PertemuanKe}, weeklyArgs(rep)...)
		args = append(args, rep.CreatedAt, rep.UpdatedAt)
		if err = tx.GetContext(ctx, &rep.ID, tx.Rebind(q), args...); err != nil {
			return errors.Wrap(err, "inserting weekly report")
		}
		return repo.setAbsences(ctx, tx, rep.ID, rep.Ketidakhadiran)
	})
	if err != nil {
		return mingguan.Report{}, err
	}
	return rep, nil
}

func (repo weeklyReportRepository) UpdateWeeklyReport(ctx context.Context, rep mingguan.Report) error {
	q := "UPDATE laporan_mingguan SET " + strings.Join(weeklyColumns, " = ?, ") + " = ?, updated_at = ? WHERE id = ?"
	args := append(weeklyArgs(rep), rep.UpdatedAt, rep.ID)

	return repo.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(q), args...)
		if err != nil {
			return errors.Wrap(err, "updating weekly report")
		}
		if err = checkAffected(res, mingguan.ErrNotFound, "updating weekly report"); err != nil {
			return err
		}
		return repo.setAbsences(ctx, tx, rep.ID, rep.Ketidakhadiran)
	})
}

func (repo weeklyReportRepository) DeleteWeeklyReport(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind("DELETE FROM laporan_mingguan WHERE id = ?"), id)
	if err != nil {
		return errors.Wrap(err, "deleting weekly report")
	}
	return checkAffected(res, mingguan.ErrNotFound, "deleting weekly report")
}
