package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/fs"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about
	sqlx.BindDriver(core.EngineSQLite, sqlx.QUESTION)
}

func postgresDSN(dbName string, admin bool, conf *core.Config) string {
	user := url.UserPassword(conf.Database.User, conf.Database.Password)
	if admin && conf.Database.AdminUser != "" {
		user = url.UserPassword(conf.Database.AdminUser, conf.Database.AdminPassword)
	}

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   core.EnginePostgres,
		User:     user,
		Host:     conf.Database.Address(),
		Path:     dbName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func sqliteDSN(conf *core.Config) string {
	q := make(url.Values)
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	if conf.Database.Path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	return conf.Database.Path + "?" + q.Encode()
}

// Open opens the configured database. It does not check the connection; see Ping.
func Open(conf *core.Config) (*sqlx.DB, error) {
	switch conf.Database.Engine {
	case core.EnginePostgres:
		return sqlx.Open(core.EnginePostgres, postgresDSN(conf.Database.Name, false, conf))
	case core.EngineSQLite:
		db, err := sqlx.Open(core.EngineSQLite, sqliteDSN(conf))
		if err != nil {
			return nil, err
		}
		// one writer; an in-memory DB also lives and dies with its only connection
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
		return db, nil
	default:
		return nil, errors.Errorf("unsupported database engine %q", conf.Database.Engine)
	}
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(ctx context.Context, db core.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "DB ping timeout")
}

func exists(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (bool, error) {
	var found bool
	err := db.GetContext(ctx, &found, db.Rebind(query), args...)
	if errors.Cause(err) == sql.ErrNoRows {
		return false, nil
	}
	return found, err
}

func createAppUser(ctx context.Context, db *sqlx.DB, conf *core.Config) error {
	if conf.Database.User == "" {
		return nil
	}
	found, err := exists(ctx, db, "SELECT true FROM pg_roles WHERE rolname = ?", conf.Database.User)
	if err != nil {
		return errors.Wrap(err, "checking app user")
	}
	if !found {
		// identifiers and passwords cannot be bound as parameters here
		q := fmt.Sprintf("CREATE USER %s CREATEDB ENCRYPTED PASSWORD %s",
			pq.QuoteIdentifier(conf.Database.User), pq.QuoteLiteral(conf.Database.Password))
		if _, err = db.ExecContext(ctx, q); err != nil {
			return errors.Wrap(err, "creating app user")
		}
	}
	return nil
}

func createDB(ctx context.Context, db *sqlx.DB, conf *core.Config) error {
	found, err := exists(ctx, db, "SELECT true FROM pg_database WHERE datname = ?", conf.Database.Name)
	if err != nil {
		return errors.Wrap(err, "checking DB")
	}
	if !found {
		if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(conf.Database.Name)); err != nil {
			return errors.Wrap(err, "creating database")
		}
	}
	return nil
}

// CreateIfNotExist creates the postgres app user and database. SQLite files are created on open.
func CreateIfNotExist(ctx context.Context, conf *core.Config) error {
	if conf.Database.Engine != core.EnginePostgres {
		return nil
	}

	// connect as admin
	db, err := sqlx.Open(core.EnginePostgres, postgresDSN("postgres", true, conf))
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = db.Close() }()
	if err = Ping(ctx, db); err != nil {
		return errors.Wrap(err, "pinging database")
	}
	if err = createAppUser(ctx, db, conf); err != nil {
		return err
	}

	// create DB as app user
	appDB, err := sqlx.Open(core.EnginePostgres, postgresDSN("postgres", false, conf))
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = appDB.Close() }()
	return createDB(ctx, appDB, conf)
}

// gooseDialect maps the engine to the goose dialect and migrations directory name.
func gooseDialect(engine string) (string, error) {
	switch engine {
	case core.EnginePostgres:
		return "postgres", nil
	case core.EngineSQLite:
		return "sqlite3", nil
	default:
		return "", errors.Errorf("unsupported database engine %q", engine)
	}
}

// RunMigrations runs a goose command (up, down, status, version, redo, reset, ...)
// with the embedded migrations of the engine's dialect.
func RunMigrations(ctx context.Context, db *sqlx.DB, engine, command string, args ...string) error {
	dialect, err := gooseDialect(engine)
	if err != nil {
		return err
	}
	goose.SetBaseFS(appfs.FS)
	if err = goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "setting goose dialect")
	}
	if err = goose.RunContext(ctx, command, db.DB, path.Join("migrations", dialect), args...); err != nil {
		return errors.Wrapf(err, "running migrations (%s)", command)
	}
	return nil
}

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, db *sqlx.DB, engine string) error {
	return RunMigrations(ctx, db, engine, "up")
}
