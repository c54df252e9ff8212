package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"course-planner/internal/logger"

	"go.uber.org/zap"
)

// DefaultMigrationsDir is where the *.up.sql files live relative to the repo root.
const DefaultMigrationsDir = "database/migrations"

// Execer is the subset of *sql.DB and *sqlx.DB migrations need.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// RunMigrations executes every *.up.sql file of dir in name order. Files may
// hold several statements separated by ";" at the end of a line.
func RunMigrations(ctx context.Context, db Execer, dir string) error {
	return runMigrations(ctx, db, os.DirFS(dir), ".up.sql")
}

// RollbackMigrations executes every *.down.sql file of dir in reverse name order.
func RollbackMigrations(ctx context.Context, db Execer, dir string) error {
	return runMigrations(ctx, db, os.DirFS(dir), ".down.sql")
}

func runMigrations(ctx context.Context, db Execer, fsys fs.FS, suffix string) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if suffix == ".down.sql" {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}

	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for i, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s (statement %d): %w", name, i+1, err)
			}
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("files", len(names)))
	return nil
}

// SplitStatements splits a script on statement-terminating semicolons. Oracle
// rejects the trailing ";" over the wire, so it is dropped.
func SplitStatements(script string) []string {
	var stmts []string
	var cur strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			cur.WriteString(strings.TrimSuffix(trimmed, ";"))
			stmts = append(stmts, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
