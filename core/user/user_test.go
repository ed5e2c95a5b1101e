package user

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
)

type memRepo struct {
	users []User
}

func (r *memRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) CreateUser(_ context.Context, usr User) (User, error) {
	usr.ID = int64(len(r.users) + 1)
	r.users = append(r.users, usr)
	return usr, nil
}

func (r *memRepo) QueryAllUsers(context.Context) ([]User, error) {
	return r.users, nil
}

func (r *memRepo) GetUserByID(_ context.Context, id int64) (User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memRepo) GetUserByUsername(_ context.Context, username string) (User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memRepo) UpdatePassword(_ context.Context, id int64, hash []byte, updatedAt time.Time) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].PasswordHash = hash
			r.users[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return ErrNotFound
}

func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		name  string
		pwd   string
		attrs []string
		want  string
	}{
		{name: "too short", pwd: "abc12", want: pwdMinLenTag},
		{name: "whitespace", pwd: "abc 12345", want: pwdNoSpaceTag},
		{name: "all numeric", pwd: "1234567890", want: pwdNotAllNumTag},
		{name: "similar to username", pwd: "cikgu_amin1", attrs: []string{"cikgu_amin"}, want: pwdAttrSimTag},
		{name: "similar to name (case-insensitive)", pwd: "NurAisyah9", attrs: []string{"ali", "Nur Aisyah"}, want: pwdAttrSimTag},
		{name: "ok", pwd: "Ranau#Sabah2024", attrs: []string{"pengguna1", "Cikgu Aminah"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPasswordPolicy(tt.pwd, tt.attrs...))
		})
	}
}

func TestNewUser_Validate(t *testing.T) {
	tests := []struct {
		name       string
		nu         NewUser
		wantFields []string
	}{
		{name: "empty", nu: NewUser{}, wantFields: []string{"username", "nama_penuh", "role", "password"}},
		{
			name:       "bad username & role",
			nu:         NewUser{Username: "a b", NamaPenuh: "A", Role: "guru", Password: "x"},
			wantFields: []string{"username", "role"},
		},
		{
			name:       "pengguna without homeroom",
			nu:         NewUser{Username: "cikgu", NamaPenuh: "Cikgu", Role: RolePengguna, Password: "x"},
			wantFields: []string{"homeroom_id"},
		},
		{
			name: "valid pengguna",
			nu:   NewUser{Username: " Cikgu_1 ", NamaPenuh: "Cikgu", Role: "PENGGUNA", HomeroomID: null.Int64From(1), Password: "x"},
		},
		{name: "valid admin", nu: NewUser{Username: "admin", NamaPenuh: "Pentadbir", Role: RoleAdmin, Password: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nu.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "got %T: %v", err, err)
			assert.ElementsMatch(t, tt.wantFields, keys(core.TranslateValidationErrors(vErrs)))
		})
	}
}

func keys(m map[string]string) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	admin, err := svc.Create(ctx, NewUser{Username: "admin", NamaPenuh: "Pentadbir Sistem", Role: RoleAdmin, Password: "admin123"})
	require.NoError(t, err)
	guru, err := svc.Create(ctx, NewUser{
		Username: "pengguna1", NamaPenuh: "Cikgu Aminah", Role: RolePengguna, HomeroomID: null.Int64From(1), Password: "user123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, []byte("user123"), guru.PasswordHash)

	_, err = svc.Create(ctx, NewUser{Username: "ADMIN", NamaPenuh: "Dup", Role: RoleAdmin, Password: "x"})
	assert.IsType(t, &core.ValidationError{}, err)

	tests := []struct {
		name     string
		username string
		password string
		want     User
		wantErr  error
	}{
		{name: "admin", username: "admin", password: "admin123", want: admin},
		{name: "pengguna", username: "pengguna1", password: "user123", want: guru},
		{name: "username is matched exactly", username: "Pengguna1", password: "user123", wantErr: ErrInvalidCredentials},
		{name: "username is not trimmed", username: " pengguna1", password: "user123", wantErr: ErrInvalidCredentials},
		{name: "wrong password", username: "admin", password: "admin1234", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "tiada", password: "admin123", wantErr: ErrInvalidCredentials},
		{name: "empty", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Authenticate(ctx, LoginRequest{Username: tt.username, Password: tt.password})
			assert.Equal(t, tt.wantErr, err)
			if tt.wantErr == nil {
				assert.Equal(t, tt.want.ID, got.ID)
				assert.Equal(t, tt.want.Role, got.Role)
			}
		})
	}
}

func TestService_SetPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})
	usr, err := svc.Create(ctx, NewUser{Username: "cikgu", NamaPenuh: "Cikgu Ali", Role: RoleAdmin, Password: "lama"})
	require.NoError(t, err)

	err = svc.SetPassword(ctx, usr.ID, "123456789", true)
	assert.IsType(t, &core.ValidationError{}, err)

	require.NoError(t, svc.SetPassword(ctx, usr.ID, "Kinabalu#4095", true))
	_, err = svc.Authenticate(ctx, LoginRequest{Username: "cikgu", Password: "lama"})
	assert.Equal(t, ErrInvalidCredentials, err)
	_, err = svc.Authenticate(ctx, LoginRequest{Username: "cikgu", Password: "Kinabalu#4095"})
	assert.NoError(t, err)

	assert.True(t, core.IsNotFound(svc.SetPassword(ctx, 99, "Kinabalu#4095", false)))
}
