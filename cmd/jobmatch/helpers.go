package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/jobmatch/internal/fetch"
	"github.com/jonathan/jobmatch/internal/ingestion"
	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/store"
)

var validate = validator.New()

// loadProfile reads, schema-validates and struct-validates a candidate
// profile JSON file.
func loadProfile(path string) (*store.StoredProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if err := schemas.ValidateProfile(data); err != nil {
		return nil, err
	}

	var profile store.StoredProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}

	if err := validate.Struct(&profile.Candidate); err != nil {
		return nil, fmt.Errorf("invalid profile values: %w", err)
	}
	return &profile, nil
}

// loadJobText reads a job posting from a text file.
func loadJobText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	return string(data), nil
}

// fetchJobText retrieves a posting URL and returns cleaned plain text.
// When the static fetch yields too little content and useBrowser is set,
// it retries with a headless browser for JS-rendered boards.
func fetchJobText(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, fetch.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	text, err := ingestion.ExtractText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		html, err := fetch.WithBrowser(ctx, urlStr, fetch.DefaultTimeout)
		if err != nil {
			return "", fmt.Errorf("browser fetch failed: %w", err)
		}
		text, err = ingestion.ExtractText(html)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from browser content: %w", err)
		}
	}
	return text, nil
}

// writeJSON marshals v with indentation and writes it to path, creating
// parent directories as needed. An empty path writes to stdout.
func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(out))
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
