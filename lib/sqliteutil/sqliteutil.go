package sqliteutil

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	devenv "github.com/mmangon/wakdrop-backend/dev/env"

	_ "modernc.org/sqlite"
)

// OpenDB opens (creating if necessary) a sqlite database at `path`,
// resolved relative to the workspace root, and applies `schema` to it.
// `:memory:` is passed through untouched.
func OpenDB(schema, path string) (*sql.DB, error) {
	dbpath := path
	if path != ":memory:" {
		var err error
		dbpath, err = devenv.ResolvePath(path)
		if err != nil {
			return nil, err
		}

		_, statErr := os.Stat(dbpath)
		if os.IsNotExist(statErr) {
			f, err := os.Create(dbpath)
			if err != nil {
				return nil, err
			}
			f.Close()
		}
	}

	db, err := sql.Open("sqlite", dbpath)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if schema != "" {
		_, err = db.Exec(schema)
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return db, nil
}
