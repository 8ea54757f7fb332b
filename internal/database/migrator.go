package database

import (
	"context"
	"embed"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const versionTable = "schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every embedded migration that has not run yet.
func Migrate(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	return MigrateTo(ctx, logger, dsn, -1)
}

// MigrateTo moves the schema to version target, running down migrations
// when target is below the current version. A negative target means the
// latest embedded version; 0 drops everything.
func MigrateTo(ctx context.Context, logger *zerolog.Logger, dsn string, target int32) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return errors.Wrap(err, "connect for migrations")
	}
	defer conn.Close(ctx)

	migrator, err := newMigrator(ctx, conn)
	if err != nil {
		return err
	}

	latest := int32(len(migrator.Migrations))
	if target < 0 || target > latest {
		target = latest
	}

	current, err := migrator.GetCurrentVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "read schema version")
	}

	if current == target {
		logger.Info().Int32("version", current).Msg("database schema up to date")
		return nil
	}

	migrator.OnStart = func(sequence int32, name, direction, _ string) {
		logger.Info().
			Int32("sequence", sequence).
			Str("name", name).
			Str("direction", direction).
			Msg("applying migration")
	}

	if err := migrator.MigrateTo(ctx, target); err != nil {
		return errors.Wrapf(err, "migrate schema from %d to %d", current, target)
	}

	logger.Info().Int32("from", current).Int32("to", target).Msg("migrated database schema")
	return nil
}

func newMigrator(ctx context.Context, conn *pgx.Conn) (*tern.Migrator, error) {
	migrator, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return nil, errors.Wrap(err, "construct migrator")
	}

	files, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	if err := migrator.LoadMigrations(files); err != nil {
		return nil, errors.Wrap(err, "load migrations")
	}
	return migrator, nil
}
