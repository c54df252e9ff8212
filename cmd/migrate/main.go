package main

import (
	"context"
	"flag"
	"log"

	"course-planner/internal/config"
	"course-planner/internal/database"
	"course-planner/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", database.DefaultMigrationsDir, "directory holding the *.up.sql and *.down.sql files")
	down := flag.Bool("down", false, "roll back instead of applying")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	run := database.RunMigrations
	if *down {
		run = database.RollbackMigrations
	}
	if err := run(ctx, db, *dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err), zap.String("dir", *dir))
	}
}
