package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
)

const homeroomSelect = `SELECT id, nama_homeroom, tingkatan, nama_guru, created_at, updated_at FROM homeroom`

type homeroomRepository struct {
	repository
}

var _ homeroom.Repository = (*homeroomRepository)(nil) // interface compliance check

func NewHomeroomRepository(db core.DB) *homeroomRepository {
	return &homeroomRepository{repository{db: db}}
}

func (repo homeroomRepository) CreateHomeroom(ctx context.Context, hr homeroom.Homeroom) (homeroom.Homeroom, error) {
	q := repo.db.Rebind(`
		INSERT INTO homeroom (nama_homeroom, tingkatan, nama_guru, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)
	if err := repo.db.GetContext(ctx, &hr.ID, q, hr.NamaHomeroom, hr.Tingkatan, hr.NamaGuru, hr.CreatedAt, hr.UpdatedAt); err != nil {
		return homeroom.Homeroom{}, errors.Wrap(err, "inserting homeroom")
	}
	return hr, nil
}

func (repo homeroomRepository) QueryHomerooms(ctx context.Context) ([]homeroom.Homeroom, error) {
	var hrs []homeroom.Homeroom
	ordering := core.OrderBy(
		core.DBOrdering{Field: "tingkatan", Ascending: true},
		core.DBOrdering{Field: "nama_homeroom", Ascending: true},
		core.DBOrdering{Field: "id", Ascending: true},
	)
	if err := repo.db.SelectContext(ctx, &hrs, homeroomSelect+" ORDER BY "+ordering); err != nil {
		return nil, errors.Wrap(err, "querying homerooms")
	}
	return nonNil(hrs), nil
}

func (repo homeroomRepository) GetHomeroomByID(ctx context.Context, id int64) (homeroom.Homeroom, error) {
	var hr homeroom.Homeroom
	if err := repo.db.GetContext(ctx, &hr, repo.db.Rebind(homeroomSelect+" WHERE id = ?"), id); err != nil {
		return homeroom.Homeroom{}, trapNoRowsErr(err, homeroom.ErrNotFound, "finding homeroom by ID")
	}
	return hr, nil
}
