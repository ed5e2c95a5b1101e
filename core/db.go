package core

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"
)

type (
	// DBExecutor is satisfied by both *sqlx.DB and *sqlx.Tx.
	DBExecutor interface {
		sqlx.ExtContext
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	DB interface {
		DBExecutor

		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		PingContext(ctx context.Context) error
	}
)

var (
	_ DB         = (*sqlx.DB)(nil)
	_ DBExecutor = (*sqlx.Tx)(nil)
)

type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// OrderBy renders orderings as an ORDER BY clause body.
func OrderBy(orderings ...DBOrdering) string {
	parts := make([]string, 0, len(orderings))
	for _, ord := range orderings {
		parts = append(parts, ord.String())
	}
	return strings.Join(parts, ", ")
}

// ID is a row identifier that also accepts numeric strings when decoded from JSON.
// HTML form values reach the API as strings ("3"), API clients send numbers (3).
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*id = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", string(data))
	}
	*id = ID(n)
	return nil
}

func (id ID) Int64() int64 { return int64(id) }

// Number is a nullable decimal that also accepts numeric strings ("3.75") from JSON.
// "" and null decode to an invalid (NULL) Number. Infinities and NaN are rejected.
type Number struct {
	null.Float64
}

func NumberFrom(f float64) Number {
	return Number{null.Float64From(f)}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	if s == "null" || s == "" {
		n.Float64 = null.Float64{}
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("invalid number %s", string(data))
	}
	n.Float64 = null.Float64From(f)
	return nil
}
