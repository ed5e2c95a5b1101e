package sqlxrepos

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/aktiviti"
)

var activityCommonColumns = []string{
	"tarikh", "hari", "masa", "nama_aktiviti", "tempat", "catatan", "disediakan_oleh", "disemak_oleh",
}

// activityColumns returns the mutable columns of the kind, in the order of activityArgs.
func activityColumns(kind aktiviti.Kind) []string {
	cols := append([]string{}, activityCommonColumns...)
	switch kind {
	case aktiviti.KindBiasa:
		cols = append(cols, "gambar1_url", "gambar1_caption", "gambar2_url", "gambar2_caption", "gambar3_url", "gambar3_caption")
	case aktiviti.KindKeusahawanan:
		cols = append(cols, "keuntungan", "gambar_url", "gambar_caption")
	case aktiviti.KindKhidmat:
		cols = append(cols, "objektif", "impak", "gambar_url", "gambar_caption")
	}
	return cols
}

func activityArgs(kind aktiviti.Kind, a aktiviti.Activity) []interface{} {
	a.Normalize(kind)
	args := []interface{}{a.Tarikh, a.Hari, a.Masa, a.NamaAktiviti, a.Tempat, a.Catatan, a.DisediakanOleh, a.DisemakOleh}
	switch kind {
	case aktiviti.KindBiasa:
		g := a.Gallery
		args = append(args, g.Gambar1URL, g.Gambar1Caption, g.Gambar2URL, g.Gambar2Caption, g.Gambar3URL, g.Gambar3Caption)
	case aktiviti.KindKeusahawanan:
		args = append(args, a.Keuntungan, a.GambarURL, a.GambarCaption)
	case aktiviti.KindKhidmat:
		args = append(args, a.Objektif, a.Impak, a.GambarURL, a.GambarCaption)
	}
	return args
}

func activitySelect(kind aktiviti.Kind) string {
	return "SELECT id, homeroom_id, " + strings.Join(activityColumns(kind), ", ") +
		", created_at, updated_at FROM " + kind.Table()
}

type activityRepository struct {
	repository
}

var _ aktiviti.Repository = (*activityRepository)(nil) // interface compliance check

func NewActivityRepository(db core.DB) *activityRepository {
	return &activityRepository{repository{db: db}}
}

func checkKind(kind aktiviti.Kind) error {
	if !kind.Valid() {
		return errors.Errorf("unknown activity kind %q", kind)
	}
	return nil
}

func (repo activityRepository) QueryActivities(ctx context.Context, kind aktiviti.Kind, homeroomID int64) ([]aktiviti.Activity, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	q := repo.db.Rebind(activitySelect(kind) + " WHERE homeroom_id = ? ORDER BY " + core.OrderBy(
		core.DBOrdering{Field: "tarikh"},
		core.DBOrdering{Field: "created_at"},
		core.DBOrdering{Field: "id"},
	))
	var as []aktiviti.Activity
	if err := repo.db.SelectContext(ctx, &as, q, homeroomID); err != nil {
		return nil, errors.Wrapf(err, "querying %s", kind.Table())
	}
	for i := range as {
		as[i].Normalize(kind)
	}
	return nonNil(as), nil
}

func (repo activityRepository) GetActivityByID(ctx context.Context, kind aktiviti.Kind, id int64) (aktiviti.Activity, error) {
	if err := checkKind(kind); err != nil {
		return aktiviti.Activity{}, err
	}
	var a aktiviti.Activity
	if err := repo.db.GetContext(ctx, &a, repo.db.Rebind(activitySelect(kind)+" WHERE id = ?"), id); err != nil {
		return aktiviti.Activity{}, trapNoRowsErr(err, aktiviti.ErrNotFound, "finding "+kind.Table()+" by ID")
	}
	a.Normalize(kind)
	return a, nil
}

func (repo activityRepository) CreateActivity(ctx context.Context, kind aktiviti.Kind, a aktiviti.Activity) (int64, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}
	cols := append([]string{"homeroom_id"}, activityColumns(kind)...)
	cols = append(cols, "created_at", "updated_at")
	q := "INSERT INTO " + kind.Table() + " (" + strings.Join(cols, ", ") + ") VALUES (" + placeholders(len(cols)) + ") RETURNING id"

	args := append([]interface{}{a.HomeroomID}, activityArgs(kind, a)...)
	args = append(args, a.CreatedAt, a.UpdatedAt)
	var id int64
	if err := repo.db.GetContext(ctx, &id, repo.db.Rebind(q), args...); err != nil {
		return 0, errors.Wrapf(err, "inserting %s", kind.Table())
	}
	return id, nil
}

func (repo activityRepository) UpdateActivity(ctx context.Context, kind aktiviti.Kind, a aktiviti.Activity) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	q := "UPDATE " + kind.Table() + " SET " + strings.Join(activityColumns(kind), " = ?, ") + " = ?, updated_at = ? WHERE id = ?"
	args := append(activityArgs(kind, a), a.UpdatedAt, a.ID)
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind(q), args...)
	if err != nil {
		return errors.Wrapf(err, "updating %s", kind.Table())
	}
	return checkAffected(res, aktiviti.ErrNotFound, "updating "+kind.Table())
}

func (repo activityRepository) DeleteActivity(ctx context.Context, kind aktiviti.Kind, id int64) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind("DELETE FROM "+kind.Table()+" WHERE id = ?"), id)
	if err != nil {
		return errors.Wrapf(err, "deleting %s", kind.Table())
	}
	return checkAffected(res, aktiviti.ErrNotFound, "deleting "+kind.Table())
}
