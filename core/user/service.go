package user

import (
	"context"
	"errors"
	"time"

	"github.com/mrsmranau/ehomeroom/core"
)

var (
	// errors
	ErrNotFound            = core.NewNotFoundError("Pengguna")
	ErrUsernameExists      = errors.New("a user with this username already exists")
	ErrInvalidCredentials  = errors.New("Username atau password salah")
	ErrPasswordPolicyCheck = errors.New("password does not satisfy the password policy")
)

type (
	Repository interface {
		UsernameExists(ctx context.Context, username string) (bool, error)
		CreateUser(ctx context.Context, usr User) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id int64) (User, error)
		GetUserByUsername(ctx context.Context, username string) (User, error)
		UpdatePassword(ctx context.Context, id int64, hash []byte, updatedAt time.Time) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	exists, err := svc.repo.UsernameExists(ctx, nu.Username)
	if err != nil {
		return User{}, err
	}
	if exists {
		return User{}, core.NewValidationError(ErrUsernameExists, core.FieldError{Field: "username", Error: ErrUsernameExists.Error()})
	}

	now := time.Now().UTC()
	usr := User{
		Username:   nu.Username,
		NamaPenuh:  nu.NamaPenuh,
		Role:       nu.Role,
		HomeroomID: nu.HomeroomID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if usr.Role == RoleAdmin {
		usr.HomeroomID.Valid = false
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByUsername(ctx context.Context, uname string) (User, error) {
	return svc.repo.GetUserByUsername(ctx, core.CleanString(uname, true /* lower */))
}

// Authenticate returns the user matching the credentials, or ErrInvalidCredentials.
// An unknown username still costs one bcrypt comparison.
func (svc *Service) Authenticate(ctx context.Context, lr LoginRequest) (User, error) {
	if err := lr.Validate(); err != nil {
		_ = (&User{PasswordHash: dummyHash}).CheckPassword(lr.Password)
		return User{}, ErrInvalidCredentials
	}

	usr, err := svc.repo.GetUserByUsername(ctx, lr.Username)
	if err != nil {
		if core.IsNotFound(err) {
			_ = (&User{PasswordHash: dummyHash}).CheckPassword(lr.Password)
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err = usr.CheckPassword(lr.Password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return usr, nil
}

// SetPassword re-hashes the password of the user. When enforcePolicy is set,
// the password must satisfy the password policy.
func (svc *Service) SetPassword(ctx context.Context, id int64, pwd string, enforcePolicy bool) error {
	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if enforcePolicy {
		if tag := CheckPasswordPolicy(pwd, usr.Username, usr.NamaPenuh); tag != "" {
			return core.NewValidationError(ErrPasswordPolicyCheck, core.FieldError{Field: "password", Error: PasswordPolicyText(tag)})
		}
	}
	if err = usr.SetPassword(pwd); err != nil {
		return err
	}
	return svc.repo.UpdatePassword(ctx, usr.ID, usr.PasswordHash, time.Now().UTC())
}
