// Command migrate applies, reverts or reports the embedded schema migrations.
//
//	migrate [up|down|status]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	intconfig "ecommerce/internal/config"
	intdb "ecommerce/internal/db"
	"ecommerce/internal/utils"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if err := run(cmd); err != nil {
		slog.Error("migrate failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func run(cmd string) error {
	env, err := intconfig.LoadEnv()
	if err != nil {
		return err
	}
	utils.SetupLogger(os.Stdout, env.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := intconfig.OpenDB(ctx, env)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB(db)

	switch cmd {
	case "up":
		err = intdb.Migrate(ctx, db)
	case "down":
		err = intdb.Rollback(ctx, db)
	case "status":
		err = intdb.MigrationStatus(ctx, db)
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
	if err != nil {
		return err
	}
	slog.Info("migrate finished", "command", cmd)
	return nil
}
