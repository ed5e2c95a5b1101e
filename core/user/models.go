package user

import (
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrsmranau/ehomeroom/core"
)

// Roles
const (
	RoleAdmin    = "admin"
	RolePengguna = "pengguna" // homeroom teacher
)

var AllRoles = []string{RoleAdmin, RolePengguna}

// dummyHash is compared against when the username does not exist,
// so unknown users and wrong passwords cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("ehomeroom:dummy-password"), bcrypt.DefaultCost)

type User struct {
	ID           int64       `db:"id" json:"id"`
	Username     string      `db:"username" json:"username"`
	NamaPenuh    string      `db:"nama_penuh" json:"nama_penuh"`
	Role         string      `db:"role" json:"role"`
	HomeroomID   null.Int64  `db:"homeroom_id" json:"homeroom_id"`
	NamaHomeroom null.String `db:"nama_homeroom" json:"nama_homeroom"`
	Tingkatan    null.String `db:"tingkatan" json:"tingkatan"`
	PasswordHash []byte      `db:"password_hash" json:"-"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"` // UTC
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is the public view of a User returned at login.
type Profile struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username"`
	NamaPenuh    string      `json:"nama_penuh"`
	Role         string      `json:"role"`
	HomeroomID   null.Int64  `json:"homeroom_id"`
	NamaHomeroom null.String `json:"nama_homeroom"`
	Tingkatan    null.String `json:"tingkatan"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:           u.ID,
		Username:     u.Username,
		NamaPenuh:    u.NamaPenuh,
		Role:         u.Role,
		HomeroomID:   u.HomeroomID,
		NamaHomeroom: u.NamaHomeroom,
		Tingkatan:    u.Tingkatan,
	}
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username   string     `json:"username" validate:"required,min=3,alphanum_"`
	NamaPenuh  string     `json:"nama_penuh" validate:"required"`
	Role       string     `json:"role" validate:"required,role"`
	HomeroomID null.Int64 `json:"homeroom_id"`
	Password   string     `json:"password" validate:"required"`
}

func (nu *NewUser) Validate() error {
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.NamaPenuh = core.CleanString(nu.NamaPenuh)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	return core.Validate.Struct(nu)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate only checks presence: the username is matched exactly as given.
func (lr *LoginRequest) Validate() error {
	return core.Validate.Struct(lr)
}
