package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/jobmatch/internal/pipeline"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score one profile against a directory of postings",
	Long:  "Run the full pipeline for every .txt posting in a directory concurrently and emit a ranked summary, best match first.",
	RunE:  runBatch,
}

var (
	batchProfileFile string
	batchJobsDir     string
	batchOutFile     string
	batchConcurrency int
)

// batchEntry is one row of the ranked batch summary.
type batchEntry struct {
	File               string  `json:"file"`
	Overall            float64 `json:"overall"`
	KeywordCoveragePct int     `json:"keyword_coverage_pct"`
	Gaps               int     `json:"gaps"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	batchCmd.Flags().StringVarP(&batchJobsDir, "jobs", "d", "", "Directory of .txt job postings (required)")
	batchCmd.Flags().StringVarP(&batchOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum postings scored in parallel")

	batchCmd.MarkFlagRequired("profile")
	batchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(batchProfileFile)
	if err != nil {
		return err
	}

	paths, err := filepath.Glob(filepath.Join(batchJobsDir, "*.txt"))
	if err != nil {
		return fmt.Errorf("failed to list job files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .txt postings found in %s", batchJobsDir)
	}

	var (
		mu      sync.Mutex
		entries []batchEntry
	)

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			role := strings.TrimSuffix(filepath.Base(path), ".txt")
			result := pipeline.Run(
				pipeline.JobInput{Role: role, Text: string(data)},
				&profile.Candidate,
				profile.Experience,
				pipeline.Options{},
			)

			mu.Lock()
			entries = append(entries, batchEntry{
				File:               filepath.Base(path),
				Overall:            result.Breakdown.Overall,
				KeywordCoveragePct: result.Coverage.KeywordCoveragePct,
				Gaps:               len(result.Breakdown.Gaps),
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Overall != entries[j].Overall {
			return entries[i].Overall > entries[j].Overall
		}
		return entries[i].File < entries[j].File
	})

	if err := writeJSON(batchOutFile, entries); err != nil {
		return err
	}
	if batchOutFile != "" {
		fmt.Printf("Scored %d postings\n", len(entries))
		fmt.Printf("Output: %s\n", batchOutFile)
	}
	return nil
}
