package testutil

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/user"
	"github.com/mrsmranau/ehomeroom/storage/database"
)

func init() {
	goose.SetLogger(log.New(io.Discard, "", 0))
}

// PrepareDB opens a fresh, migrated in-memory SQLite database, closed when the test ends.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conf := core.NewTestConfig()
	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("database.Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(context.Background(), db, conf.Database.Engine); err != nil {
		t.Fatalf("database.Migrate() failed: %v", err)
	}
	return db
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, pwd, role string,
	homeroomID int64,
	createdAt ...time.Time,
) user.User {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Username:   uname,
		NamaPenuh:  name,
		Role:       role,
		HomeroomID: null.NewInt64(homeroomID, homeroomID > 0),
		CreatedAt:  tstamp,
		UpdatedAt:  tstamp,
	}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateHomeroom(t *testing.T, repo homeroom.Repository, nama, tingkatan, guru string) homeroom.Homeroom {
	t.Helper()
	now := time.Now().UTC()
	hr, err := repo.CreateHomeroom(context.Background(), homeroom.Homeroom{
		NamaHomeroom: nama,
		Tingkatan:    tingkatan,
		NamaGuru:     null.NewString(guru, guru != ""),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateHomeroom() failed: %v", err)
	}
	return hr
}
