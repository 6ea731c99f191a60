package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/jobmatch/internal/store"
	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track job applications in the database",
	Long:  "Record and query job applications: add a new one, list by status, or move one through the lifecycle (tracked, applied, interviewed, offer, rejected).",
}

var trackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an application to the tracker",
	RunE:  runTrackAdd,
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications, newest first",
	RunE:  runTrackList,
}

var trackStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update an application's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackStatus,
}

var (
	trackDatabaseURL string
	trackCompany     string
	trackRole        string
	trackLocation    string
	trackScore       float64
	trackNotes       string
	trackFilter      string
)

func init() {
	trackCmd.PersistentFlags().StringVar(&trackDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	trackAddCmd.Flags().StringVar(&trackCompany, "company", "", "Company name (required)")
	trackAddCmd.Flags().StringVar(&trackRole, "role", "", "Role title (required)")
	trackAddCmd.Flags().StringVar(&trackLocation, "location", "", "Job location")
	trackAddCmd.Flags().Float64Var(&trackScore, "score", 0, "Match score to record")
	trackAddCmd.Flags().StringVar(&trackNotes, "notes", "", "Free-form notes")
	trackAddCmd.MarkFlagRequired("company")
	trackAddCmd.MarkFlagRequired("role")

	trackListCmd.Flags().StringVar(&trackFilter, "status", "", "Only list applications with this status")

	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackListCmd)
	trackCmd.AddCommand(trackStatusCmd)
	rootCmd.AddCommand(trackCmd)
}

func connectStore(ctx context.Context) (*store.DB, error) {
	databaseURL := trackDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url flag)")
	}

	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return db, nil
}

func runTrackAdd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	db, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.CreateApplication(ctx, &store.Application{
		Company:    trackCompany,
		Role:       trackRole,
		Location:   trackLocation,
		Status:     store.StatusTracked,
		MatchScore: trackScore,
		Notes:      trackNotes,
	})
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	fmt.Printf("Tracked application %s (%s at %s)\n", id, trackRole, trackCompany)
	return nil
}

func runTrackList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	db, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	apps, err := db.ListApplications(ctx, trackFilter)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	if len(apps) == 0 {
		fmt.Println("No applications found")
		return nil
	}

	for _, app := range apps {
		fmt.Printf("%s  %-12s  %5.1f  %s at %s\n",
			app.ID, app.Status, app.MatchScore, app.Role, app.Company)
	}
	return nil
}

func runTrackStatus(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid application id: %w", err)
	}
	status := args[1]
	switch status {
	case store.StatusTracked, store.StatusApplied, store.StatusInterviewed, store.StatusOffer, store.StatusRejected:
	default:
		return fmt.Errorf("unknown status %q", status)
	}

	ctx := context.Background()
	db, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.UpdateApplicationStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	fmt.Printf("Application %s moved to %s\n", id, status)
	return nil
}
