package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"notes-api/internal/config"
	"notes-api/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version|redo|reset]",
	Short:     "Run schema migrations against the relational store",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"up", "down", "status", "version", "redo", "reset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StoreBackend != config.BackendSQL {
			return fmt.Errorf("migrations only apply to the %s backend, STORE_BACKEND is %s", config.BackendSQL, cfg.StoreBackend)
		}

		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		db, err := storage.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() {
			_ = db.Close()
		}()

		return storage.RunMigrations(cmd.Context(), db, cfg.DBDriver, command)
	},
}
