package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/config"
	"github.com/chatlens/chatlens/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, DB, and show stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  Media placeholder:   %q\n", cfg.MediaPlaceholder)
			fmt.Printf("  Sentiment threshold: %.2f\n", cfg.SentimentThreshold)
			if cfg.StopwordsFile != "" {
				checkFile("Stopwords", cfg.StopwordsFile)
			} else {
				fmt.Println("  Stopwords:           built-in list")
			}
			fmt.Printf("  Extra service phrases: %d\n", len(cfg.ServicePhrases))

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'chatlens import' first)")
				return nil
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			chatCount, err := db.ChatCount()
			if err != nil {
				return fmt.Errorf("count chats: %w", err)
			}
			recordCount, err := db.RecordCount()
			if err != nil {
				return fmt.Errorf("count records: %w", err)
			}

			fmt.Printf("  Chats:   %d\n", chatCount)
			fmt.Printf("  Records: %d\n", recordCount)

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}
			return nil
		},
	}
}

func checkFile(name, path string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("  %s:           %s (NOT FOUND)\n", name, path)
	} else {
		fmt.Printf("  %s:           %s (OK)\n", name, path)
	}
}
