// Package main provides the jobmatch CLI: scoring candidate profiles
// against job descriptions and tailoring resume content to them.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Job-match and resume-tailoring engine",
	Long:  "jobmatch scores a candidate profile against job descriptions, selects the most relevant resume content, and reports keyword coverage and gaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
