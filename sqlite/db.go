// Package sqlite implements planner's Database and TaskStore interfaces
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"

	planner "github.com/AnmoL11221/Voice-Task-Planner"
)

type database struct {
	conn *sql.DB
}

var _ planner.Database = (*database)(nil)

func Open(url string) (*database, error) {
	if dir := filepath.Dir(url); dir != "." {
		if err := os.MkdirAll(dir, 0o744); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", url)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	return &database{
		conn: conn,
	}, nil
}

func (db *database) Migrate(migrations embed.FS) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	d, err := migratesqlite.WithInstance(db.conn, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", d)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (db *database) DB() *sql.DB {
	return db.conn
}

func (db *database) Close() error {
	return db.conn.Close()
}
