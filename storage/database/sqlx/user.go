package sqlxrepos

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/user"
)

const userSelect = `
	SELECT u.id, u.username, u.nama_penuh, u.role, u.homeroom_id, u.password_hash,
		u.created_at, u.updated_at, h.nama_homeroom, h.tingkatan
	FROM users u
	LEFT JOIN homeroom h ON h.id = u.homeroom_id`

type userRepository struct {
	repository
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db core.DB) *userRepository {
	return &userRepository{repository{db: db}}
}

func (repo userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var n int
	err := repo.db.GetContext(ctx, &n, repo.db.Rebind("SELECT COUNT(*) FROM users WHERE username = ?"), username)
	if err != nil {
		return false, errors.Wrap(err, "checking username uniqueness")
	}
	return n > 0, nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	q := repo.db.Rebind(`
		INSERT INTO users (username, nama_penuh, role, homeroom_id, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)
	err := repo.db.GetContext(ctx, &usr.ID, q,
		usr.Username, usr.NamaPenuh, usr.Role, usr.HomeroomID, usr.PasswordHash, usr.CreatedAt, usr.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, core.NewValidationError(user.ErrUsernameExists,
				core.FieldError{Field: "username", Error: user.ErrUsernameExists.Error()})
		}
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return repo.GetUserByID(ctx, usr.ID)
}

func (repo userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := repo.db.SelectContext(ctx, &users, userSelect+" ORDER BY u.username"); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return nonNil(users), nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id int64) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(ctx, &usr, repo.db.Rebind(userSelect+" WHERE u.id = ?"), id)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "finding user by ID")
	}
	return usr, nil
}

func (repo userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(ctx, &usr, repo.db.Rebind(userSelect+" WHERE u.username = ?"), username)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "finding user by username")
	}
	return usr, nil
}

func (repo userRepository) UpdatePassword(ctx context.Context, id int64, hash []byte, updatedAt time.Time) error {
	res, err := repo.db.ExecContext(ctx,
		repo.db.Rebind("UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?"), hash, updatedAt, id)
	if err != nil {
		return errors.Wrap(err, "updating password")
	}
	return checkAffected(res, user.ErrNotFound, "updating password")
}
