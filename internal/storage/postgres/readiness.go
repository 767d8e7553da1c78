package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/lib/pq"
	"github.com/samber/lo"
)

// Tables lists what Migrate creates, in schema order.
var Tables = []string{"companies", "jobs"}

const tablesQuery = `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = current_schema() AND table_name = ANY($1)
`

// Readiness reports whether the store is reachable and migrated.
type Readiness struct {
	db *sql.DB
}

func NewReadiness(db *sql.DB) *Readiness {
	return &Readiness{db: db}
}

// Check returns the tables from Tables that are missing from the current
// schema. An error means the store could not be queried at all.
func (r *Readiness) Check(ctx context.Context) ([]string, error) {
	if err := r.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, tablesQuery, pq.Array(Tables))
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var present []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present = append(present, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	missing := lo.Without(Tables, present...)
	sort.Strings(missing)
	return missing, nil
}
