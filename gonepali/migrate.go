package gonepali

import (
	"context"
	sql "database/sql"
	"fmt"
	"io/fs"
	"strings"
)

type migrate struct {
	db *sql.DB
	fs fs.FS
}

type migrationStatus struct {
	lastRun       string
	lastMigration string
}

func initMigrate(ctx context.Context, db *sql.DB, fs fs.FS) (*migrate, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name VARCHAR(200)
		);
	`)
	if err != nil {
		return nil, err
	}

	return &migrate{db, fs}, nil
}

func (mg *migrate) status(ctx context.Context) (*migrationStatus, error) {
	var lastRun string
	err := mg.db.QueryRowContext(ctx, "SELECT name FROM migrations ORDER BY id DESC LIMIT 1").Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	files, err := fs.ReadDir(mg.fs, ".")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &migrationStatus{lastRun, lastRun}, nil
	}

	lastMigration := migrationName(files[len(files)-1].Name())

	return &migrationStatus{lastRun, lastMigration}, nil
}

// run applies every migration after the last one recorded and
// returns how many ran
func (mg *migrate) run(ctx context.Context) (int, error) {
	status, err := mg.status(ctx)
	if err != nil {
		return 0, err
	}

	if status.lastRun == status.lastMigration {
		return 0, nil
	}

	return mg.runMigrations(ctx, status)
}

func migrationName(fileName string) string {
	return strings.Split(fileName, ".")[0]
}

func (mg *migrate) runMigrations(ctx context.Context, status *migrationStatus) (int, error) {
	files, err := fs.ReadDir(mg.fs, ".")
	if err != nil {
		return 0, err
	}

	ranMigrations := 0

	// lastRun will be empty if no migrations have been run
	foundLastRunMigration := status.lastRun == ""

	for _, file := range files {
		name := migrationName(file.Name())

		if !foundLastRunMigration {
			foundLastRunMigration = status.lastRun == name
			continue
		}

		if err := mg.runMigration(ctx, file.Name(), name); err != nil {
			return ranMigrations, fmt.Errorf("migration %s: %w", name, err)
		}
		ranMigrations++
	}

	return ranMigrations, nil
}

func (mg *migrate) runMigration(ctx context.Context, fileName string, name string) error {
	fileContents, err := fs.ReadFile(mg.fs, fileName)
	if err != nil {
		return err
	}

	tx, err := mg.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(fileContents)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO migrations (name) VALUES(?)", name); err != nil {
		return err
	}

	return tx.Commit()
}
