package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/schema.sql
var sqlFiles embed.FS

// CreateSchema executes the embedded schema script. Statements use IF NOT
// EXISTS, so running it against an already compiled database is harmless.
func CreateSchema(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute schema script: %w", err)
	}

	return nil
}
