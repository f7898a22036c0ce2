package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/config"
	"github.com/chatlens/chatlens/internal/store"
)

func importCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Normalize a transcript and store it for later analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			records, err := processFile(cfg, args[0])
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("no valid chat data found in %s", args[0])
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			if name == "" {
				name = filepath.Base(args[0])
			}
			id, err := db.SaveChat(name, args[0], records)
			if err != nil {
				return fmt.Errorf("save chat: %w", err)
			}

			fmt.Printf("Imported %d records as %q (chat %s)\n", len(records), name, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Chat name (default: transcript file name)")

	return cmd
}
