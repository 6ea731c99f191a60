package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobmatch/internal/ingestion"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a text file or URL",
	Long:  "Ingest a job posting from either a text file or URL, strip boilerplate, normalize whitespace, and write the cleaned text.",
	RunE:  runIngest,
}

var (
	ingestTextFile   string
	ingestURL        string
	ingestOutDir     string
	ingestUseBrowser bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Fall back to a headless browser for JS-rendered boards")

	ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var cleaned string
	if ingestTextFile != "" {
		raw, err := loadJobText(ingestTextFile)
		if err != nil {
			return err
		}
		cleaned = ingestion.CleanText(raw)
	} else {
		text, err := fetchJobText(context.Background(), ingestURL, ingestUseBrowser)
		if err != nil {
			return err
		}
		cleaned = text
	}

	if err := os.MkdirAll(ingestOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outPath := filepath.Join(ingestOutDir, "job_posting.cleaned.txt")
	if err := os.WriteFile(outPath, []byte(cleaned), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}

	fmt.Println("Successfully ingested job posting")
	fmt.Printf("Cleaned text: %s\n", outPath)

	return nil
}
