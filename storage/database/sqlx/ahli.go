package sqlxrepos

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/ahli"
)

// memberColumns are the mutable columns, in the order of memberArgs.
var memberColumns = []string{
	"nama_ahli", "no_maktab", "jantina", "kelas", "jawatan_homeroom", "no_bilik_asrama",
	"unit_beruniform", "jawatan_beruniform", "jawatan_beruniform_lain",
	"kelab_persatuan", "jawatan_kelab", "jawatan_kelab_lain",
	"sukan_permainan", "jawatan_sukan", "jawatan_sukan_lain",
	"sekretariat_skp", "jawatan_skp", "jawatan_skp_lain",
}

func memberArgs(m ahli.Member) []interface{} {
	return []interface{}{
		m.NamaAhli, m.NoMaktab, m.Jantina, m.Kelas, m.JawatanHomeroom, m.NoBilikAsrama,
		m.UnitBeruniform, m.JawatanBeruniform, m.JawatanBeruniformLain,
		m.KelabPersatuan, m.JawatanKelab, m.JawatanKelabLain,
		m.SukanPermainan, m.JawatanSukan, m.JawatanSukanLain,
		m.SekretariatSKP, m.JawatanSKP, m.JawatanSKPLain,
	}
}

var memberSelect = "SELECT id, homeroom_id, bilangan, " + strings.Join(memberColumns, ", ") +
	", created_at, updated_at FROM ahli_homeroom"

type memberRepository struct {
	repository
}

var _ ahli.Repository = (*memberRepository)(nil) // interface compliance check

func NewMemberRepository(db core.DB) *memberRepository {
	return &memberRepository{repository{db: db}}
}

func (repo memberRepository) QueryMembers(ctx context.Context, homeroomID int64) ([]ahli.Member, error) {
	q := repo.db.Rebind(memberSelect + " WHERE homeroom_id = ? ORDER BY " +
		core.OrderBy(core.DBOrdering{Field: "bilangan", Ascending: true}))
	var members []ahli.Member
	if err := repo.db.SelectContext(ctx, &members, q, homeroomID); err != nil {
		return nil, errors.Wrap(err, "querying members")
	}
	return nonNil(members), nil
}

func (repo memberRepository) GetMemberByID(ctx context.Context, id int64) (ahli.Member, error) {
	var m ahli.Member
	if err := repo.db.GetContext(ctx, &m, repo.db.Rebind(memberSelect+" WHERE id = ?"), id); err != nil {
		return ahli.Member{}, trapNoRowsErr(err, ahli.ErrNotFound, "finding member by ID")
	}
	return m, nil
}

func (repo memberRepository) CreateMember(ctx context.Context, m ahli.Member) (ahli.Member, error) {
	cols := append([]string{"homeroom_id", "bilangan"}, memberColumns...)
	cols = append(cols, "created_at", "updated_at")
	q := "INSERT INTO ahli_homeroom (" + strings.Join(cols, ", ") + ") VALUES (" + placeholders(len(cols)) + ") RETURNING id"

	err := repo.inTx(ctx, func(tx *sqlx.Tx) error {
		n, err := bilanganAhli.next(ctx, tx, m.HomeroomID)
		if err != nil {
			return err
		}
		m.Bilangan = n

		args := append([]interface{}{m.HomeroomID, m.Bilangan}, memberArgs(m)...)
		args = append(args, m.CreatedAt, m.UpdatedAt)
		return errors.Wrap(tx.GetContext(ctx, &m.ID, tx.Rebind(q), args...), "inserting member")
	})
	if err != nil {
		return ahli.Member{}, err
	}
	return m, nil
}

func (repo memberRepository) UpdateMember(ctx context.Context, m ahli.Member) error {
	q := "UPDATE ahli_homeroom SET " + strings.Join(memberColumns, " = ?, ") + " = ?, updated_at = ? WHERE id = ?"
	args := append(memberArgs(m), m.UpdatedAt, m.ID)
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind(q), args...)
	if err != nil {
		return errors.Wrap(err, "updating member")
	}
	return checkAffected(res, ahli.ErrNotFound, "updating member")
}

func (repo memberRepository) DeleteMember(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind("DELETE FROM ahli_homeroom WHERE id = ?"), id)
	if err != nil {
		return errors.Wrap(err, "deleting member")
	}
	return checkAffected(res, ahli.ErrNotFound, "deleting member")
}
