package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/jobmatch/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Save and retrieve candidate profiles in the database",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Validate a profile file and save it under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileFile string

func init() {
	profileCmd.PersistentFlags().StringVar(&trackDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	profileSaveCmd.Flags().StringVarP(&profileFile, "file", "f", "", "Path to candidate profile JSON (required)")
	profileSaveCmd.MarkFlagRequired("file")

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSave(_ *cobra.Command, args []string) error {
	profile, err := loadProfile(profileFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveProfile(ctx, args[0], profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("Saved profile %q\n", args[0])
	return nil
}

func runProfileShow(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	db, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	profile, err := db.LoadProfile(ctx, args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("profile %q not found", args[0])
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	return writeJSON("", profile)
}
