package postgres

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"tablero/internal/config"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return db, nil
}

// buildSetClause constructs a dynamic SET clause from a field map,
// keeping only whitelisted columns. Returns the clause (without "SET"),
// the positional args, and the next free placeholder index.
func buildSetClause(fields map[string]interface{}, allowed map[string]bool) (clause string, args []interface{}, next int, err error) {
	next = 1
	for col, val := range fields {
		if !allowed[col] {
			return "", nil, 0, fmt.Errorf("column %q not updatable", col)
		}
		if clause != "" {
			clause += ", "
		}
		clause += fmt.Sprintf("%s = $%d", col, next)
		args = append(args, val)
		next++
	}
	return clause, args, next, nil
}
