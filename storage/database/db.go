package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/trezcool/campusconnect/core"
)

// Open opens the SQL database selected by config. The default is an in-memory
// SQLite database: the directory is a fixture rebuilt at every boot, so nothing
// needs to survive a restart. A postgres DSN can be configured instead.
func Open() (*sql.DB, error) {
	engine := core.Conf.GetString("databaseEngine")
	dsn := core.Conf.GetString("databaseDSN")

	var db *sql.DB
	var err error
	switch engine {
	case "sqlite":
		db, err = sql.Open("sqlite", dsn)
		if err == nil {
			// a ":memory:" database exists per connection; the pool must not grow past one
			db.SetMaxOpenConns(1)
		}
	case "postgres":
		db, err = sql.Open("postgres", dsn)
	default:
		return nil, errors.Errorf("unsupported database engine %q", engine)
	}
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	if err = ping(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sql.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}
