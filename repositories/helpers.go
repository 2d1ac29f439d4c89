package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx, so repository methods
// that must participate in a service-level transaction take one explicitly.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func checkAffectedRows(result sql.Result, notFoundErr error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundErr
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a search term in wildcards for a LIKE substring match,
// escaping %, _ and \ so they match literally instead of acting as pattern
// metacharacters.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// appendListClauses renders the shared ORDER BY / LIMIT / OFFSET tail of the
// admin listing queries. ORDER BY id is only applied for an explicit
// direction; otherwise rows come back in insertion order.
func appendListClauses(query string, orderBy string, take, skip *int, args []interface{}) (string, []interface{}) {
	switch orderBy {
	case "asc":
		query += " ORDER BY id ASC"
	case "desc":
		query += " ORDER BY id DESC"
	}
	if take != nil && *take >= 0 {
		args = append(args, *take)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if skip != nil && *skip >= 0 {
		args = append(args, *skip)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}
