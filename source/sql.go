package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hupe1980/tabview/record"
)

// Querier is the subset of *sql.DB (or *sql.Conn, *sql.Tx) used by SQL.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var _ Querier = (*sql.DB)(nil)

// SQL loads the result set of a query. The column order of the result set
// becomes the schema.
//
// Any database/sql driver works; register it with a blank import, e.g.
// modernc.org/sqlite, github.com/lib/pq or github.com/go-sql-driver/mysql.
type SQL struct {
	db      Querier
	query   string
	args    []any
	timeout time.Duration
}

// NewSQL creates a source running query with args against db.
func NewSQL(db Querier, query string, args ...any) *SQL {
	return &SQL{db: db, query: query, args: args, timeout: 30 * time.Second}
}

// WithTimeout bounds the query. Zero disables the bound.
func (s *SQL) WithTimeout(d time.Duration) *SQL {
	s.timeout = d
	return s
}

// Load runs the query and reads every row.
func (s *SQL) Load(ctx context.Context) (Table, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rows, err := s.db.QueryContext(ctx, s.query, s.args...)
	if err != nil {
		return Table{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Table{}, fmt.Errorf("columns: %w", err)
	}

	t := Table{Schema: record.Schema(cols)}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return Table{}, fmt.Errorf("scan row: %w", err)
		}

		r := make(record.Record, len(cols))
		for i, col := range cols {
			v, err := sqlValue(values[i])
			if err != nil {
				return Table{}, fmt.Errorf("row %d: column %q: %w", len(t.Records), col, err)
			}
			r[col] = v
		}
		t.Records = append(t.Records, r)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("rows: %w", err)
	}
	return t, nil
}

func sqlValue(v any) (record.Value, error) {
	switch x := v.(type) {
	case []byte:
		return record.String(string(x)), nil
	case time.Time:
		return record.String(x.Format(time.RFC3339)), nil
	default:
		return record.FromAny(v)
	}
}
