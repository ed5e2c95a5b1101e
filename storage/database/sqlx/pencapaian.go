package sqlxrepos

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/pencapaian"
)

var achievementColumns = []string{
	"nama_pelajar", "no_maktab", "png", "nama_aktiviti", "peringkat", "pencapaian",
	"galeri_url", "galeri_caption", "disediakan_oleh", "disemak_oleh",
}

func achievementArgs(a pencapaian.Achievement) []interface{} {
	return []interface{}{
		a.NamaPelajar, a.NoMaktab, a.PNG, a.NamaAktiviti, a.Peringkat, a.Pencapaian,
		a.GaleriURL, a.GaleriCaption, a.DisediakanOleh, a.DisemakOleh,
	}
}

var achievementSelect = "SELECT id, homeroom_id, " + strings.Join(achievementColumns, ", ") +
	", created_at, updated_at FROM pencapaian"

type achievementRepository struct {
	repository
}

var _ pencapaian.Repository = (*achievementRepository)(nil) // interface compliance check

func NewAchievementRepository(db core.DB) *achievementRepository {
	return &achievementRepository{repository{db: db}}
}

func (repo achievementRepository) QueryAchievements(ctx context.Context, homeroomID int64) ([]pencapaian.Achievement, error) {
	q := repo.db.Rebind(achievementSelect + " WHERE homeroom_id = ? ORDER BY " +
		core.OrderBy(core.DBOrdering{Field: "created_at"}, core.DBOrdering{Field: "id"}))
	var as []pencapaian.Achievement
	if err := repo.db.SelectContext(ctx, &as, q, homeroomID); err != nil {
		return nil, errors.Wrap(err, "querying achievements")
	}
	return nonNil(as), nil
}

func (repo achievementRepository) GetAchievementByID(ctx context.Context, id int64) (pencapaian.Achievement, error) {
	var a pencapaian.Achievement
	if err := repo.db.GetContext(ctx, &a, repo.db.Rebind(achievementSelect+" WHERE id = ?"), id); err != nil {
		return pencapaian.Achievement{}, trapNoRowsErr(err, pencapaian.ErrNotFound, "finding achievement by ID")
	}
	return a, nil
}

func (repo achievementRepository) CreateAchievement(ctx context.Context, a pencapaian.Achievement) (int64, error) {
	cols := append([]string{"homeroom_id"}, achievementColumns...)
	cols = append(cols, "created_at", "updated_at")
	q := "INSERT INTO pencapaian (" + strings.Join(cols, ", ") + ") VALUES (" + placeholders(len(cols)) + ") RETURNING id"

	args := append([]interface{}{a.HomeroomID}, achievementArgs(a)...)
	args = append(args, a.CreatedAt, a.UpdatedAt)
	var id int64
	if err := repo.db.GetContext(ctx, &id, repo.db.Rebind(q), args...); err != nil {
		return 0, errors.Wrap(err, "inserting achievement")
	}
	return id, nil
}

func (repo achievementRepository) UpdateAchievement(ctx context.Context, a pencapaian.Achievement) error {
	q := "UPDATE pencapaian SET " + strings.Join(achievementColumns, " = ?, ") + " = ?, updated_at = ? WHERE id = ?"
	args := append(achievementArgs(a), a.UpdatedAt, a.ID)
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind(q), args...)
	if err != nil {
		return errors.Wrap(err, "updating achievement")
	}
	return checkAffected(res, pencapaian.ErrNotFound, "updating achievement")
}

func (repo achievementRepository) DeleteAchievement(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind("DELETE FROM pencapaian WHERE id = ?"), id)
	if err != nil {
		return errors.Wrap(err, "deleting achievement")
	}
	return checkAffected(res, pencapaian.ErrNotFound, "deleting achievement")
}
