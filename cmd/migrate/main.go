package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/migrations"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|redo|status|version")
	version := flag.String("version", "", "target version for -cmd=version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	logger.Info("running migrations", zap.String("cmd", *cmd), zap.String("env", cfg.Environment))

	switch *cmd {
	case "up", "down", "redo", "status":
		err = migrations.Run(ctx, db.DB, *cmd)
	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		err = migrations.MigrateToVersion(ctx, db.DB, *version)
	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("migration failed", zap.String("cmd", *cmd), zap.Error(err))
	}
	logger.Info("migrations done", zap.String("cmd", *cmd))
}
