package business

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/XSAM/otelsql"
	"github.com/pressly/goose/v3"
	"github.com/samber/oops"

	// Register pgx driver
	_ "github.com/jackc/pgx/v5/stdlib"

	slogctx "github.com/veqryn/slog-context"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/openkcm/interview-manager/internal/config"
	migrations "github.com/openkcm/interview-manager/sql"
)

// MigrateMain applies the report archive migrations.
func MigrateMain(ctx context.Context, cfg *config.Config) error {
	const driver = "pgx"
	dbSystemName := semconv.DBSystemNamePostgreSQL

	source, err := migrationSource(cfg.Migrate.Source)
	if err != nil {
		return err
	}

	connStr, err := config.MakeConnStr(cfg.Database)
	if err != nil {
		return fmt.Errorf("making connection string from config: %w", err)
	}

	db, err := otelsql.Open(driver, connStr, otelsql.WithAttributes(dbSystemName))
	if err != nil {
		return oops.In("main").Wrapf(err, "opening DB connection")
	}
	defer db.Close()

	reg, err := otelsql.RegisterDBStatsMetrics(db, otelsql.WithAttributes(dbSystemName))
	if err != nil {
		return fmt.Errorf("registering db stats metrics: %w", err)
	}

	defer func() {
		err := reg.Unregister()
		if err != nil {
			slogctx.Error(ctx, "failed to unregister db stats metrics", "error", err)
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, source)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	for _, res := range results {
		slogctx.Info(ctx, "Applied migration",
			"version", res.Source.Version,
			"path", res.Source.Path,
			"duration", res.Duration,
		)
	}
	if len(results) == 0 {
		slogctx.Info(ctx, "Report archive schema is up to date")
	}

	return nil
}

// migrationSource resolves the migrate source: "embedded" uses the
// migrations compiled into the binary, file:// a directory on disk.
func migrationSource(source string) (fs.FS, error) {
	switch {
	case source == "" || source == config.MigrateSourceEmbedded:
		return migrations.FS, nil
	case strings.HasPrefix(source, "file://"):
		return os.DirFS(strings.TrimPrefix(source, "file://")), nil
	default:
		return nil, fmt.Errorf("unsupported migrate source %q", source)
	}
}
