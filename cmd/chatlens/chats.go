package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/config"
	"github.com/chatlens/chatlens/internal/render"
	"github.com/chatlens/chatlens/internal/store"
)

func chatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chats [id]",
		Short: "List stored chats, or show one chat's details and speakers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			if len(args) == 1 {
				return showChat(db, args[0])
			}

			chats, err := db.ListChats()
			if err != nil {
				return fmt.Errorf("list chats: %w", err)
			}
			if len(chats) == 0 {
				fmt.Println("No chats imported yet. Run 'chatlens import <file>' first.")
				return nil
			}

			rows := make([][]string, 0, len(chats))
			for _, c := range chats {
				rows = append(rows, []string{
					c.ID,
					c.Name,
					c.ImportedAt.Format("2006-01-02 15:04"),
					strconv.Itoa(c.Records),
				})
			}
			fmt.Println(render.Table([]string{"ID", "Name", "Imported", "Records"}, rows))
			return nil
		},
	}
}

func showChat(db *store.DB, id string) error {
	chat, err := db.GetChat(id)
	if err != nil {
		return fmt.Errorf("get chat: %w", err)
	}
	if chat == nil {
		return fmt.Errorf("chat not found: %s", id)
	}

	speakers, err := db.Speakers(id)
	if err != nil {
		return fmt.Errorf("list speakers: %w", err)
	}

	fmt.Printf("Chat:     %s\n", chat.Name)
	fmt.Printf("Source:   %s\n", chat.SourcePath)
	fmt.Printf("Imported: %s\n", chat.ImportedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Records:  %d\n", chat.Records)
	fmt.Printf("Speakers: %s\n", strings.Join(speakers, ", "))
	return nil
}
