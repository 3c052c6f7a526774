package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"notes-api/internal/service"
	"notes-api/internal/storage"
	"notes-api/internal/vault"
)

var importEmail string

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import a directory of markdown files as notes of one user",
	Long: `Import walks a directory such as an Obsidian vault and creates one note per
markdown file. A leading "# " heading becomes the title and folders become tags.
Semantic indexing is not performed; run POST /index afterwards if it is enabled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.close()

		user, err := st.users.FindByEmail(ctx, importEmail)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no user with email %q", importEmail)
			}
			return err
		}

		notes := service.NewNotesService(st.notes, nil)
		stats, err := vault.NewImporter(notes).Import(ctx, user.ID, args[0])
		if err != nil {
			return err
		}

		slog.Info("Import complete", "user_id", user.ID, "imported", stats.NotesImported, "skipped", stats.Skipped)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importEmail, "email", "", "email of the user who will own the notes")
	_ = importCmd.MarkFlagRequired("email")
}
