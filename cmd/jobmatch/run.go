package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline for one posting",
	Long:  "Run keyword extraction, requirement parsing, match scoring, content selection and coverage analysis for one candidate/posting pair, from a config file or flags.",
	RunE:  runRun,
}

var (
	runConfigFile  string
	runProfileFile string
	runJobFile     string
	runJobURL      string
	runCompany     string
	runRole        string
	runOutFile     string
	runUseBrowser  bool
	runVerbose     bool
)

func init() {
	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "Path to JSON config file")
	runCmd.Flags().StringVarP(&runProfileFile, "profile", "p", "", "Path to candidate profile JSON")
	runCmd.Flags().StringVarP(&runJobFile, "job", "j", "", "Path to job posting text file")
	runCmd.Flags().StringVarP(&runJobURL, "job-url", "u", "", "URL to fetch the posting from")
	runCmd.Flags().StringVar(&runCompany, "company", "", "Company name for the posting")
	runCmd.Flags().StringVar(&runRole, "role", "", "Role title for the posting")
	runCmd.Flags().StringVarP(&runOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	runCmd.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Fall back to a headless browser for JS-rendered boards")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(runCmd)
}

// resolveRunConfig merges the optional config file with flag overrides.
// Flags win over file values; env overrides are applied by config.Load.
func resolveRunConfig() (*config.Config, error) {
	var cfg *config.Config
	if runConfigFile != "" {
		loaded, err := config.Load(runConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.FromEnv()
	}

	if runProfileFile != "" {
		cfg.Profile = runProfileFile
	}
	if runJobFile != "" {
		cfg.Job = runJobFile
	}
	if runJobURL != "" {
		cfg.JobURL = runJobURL
	}
	if runUseBrowser {
		cfg.UseBrowser = true
	}
	if runVerbose {
		cfg.Verbose = true
	}

	if cfg.Profile == "" {
		return nil, fmt.Errorf("a candidate profile is required (--profile or config file)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return nil, fmt.Errorf("a job source is required (--job, --job-url or config file)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := resolveRunConfig()
	if err != nil {
		return err
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	var text string
	if cfg.Job != "" {
		text, err = loadJobText(cfg.Job)
	} else {
		text, err = fetchJobText(context.Background(), cfg.JobURL, cfg.UseBrowser)
	}
	if err != nil {
		return err
	}

	result := pipeline.Run(
		pipeline.JobInput{Company: runCompany, Role: runRole, Text: text},
		&profile.Candidate,
		profile.Experience,
		pipeline.Options{
			KeywordLimit: cfg.KeywordLimit,
			MaxBullets:   cfg.MaxBullets,
			MaxSkills:    cfg.MaxSkills,
		},
	)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintResult(result)
	}

	if err := writeJSON(runOutFile, result); err != nil {
		return err
	}
	if runOutFile != "" {
		fmt.Printf("Overall match: %.2f (%d%% keyword coverage)\n",
			result.Breakdown.Overall, result.Coverage.KeywordCoveragePct)
		fmt.Printf("Output: %s\n", runOutFile)
	}
	return nil
}
