// Package types provides type definitions for structured data used throughout the job-match engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// CandidateProfile is an immutable snapshot of a person's professional facts.
// The engine never mutates a profile; missing fields fall back to zero values
// (empty string, 0, false, empty slice) so partial data scores conservatively
// instead of failing.
type CandidateProfile struct {
	Degree             string   `json:"degree,omitempty"`
	YearsExperience    int      `json:"years_experience" validate:"gte=0"`
	Skills             []string `json:"skills,omitempty"`
	Technologies       []string `json:"technologies,omitempty"`
	Methodologies      []string `json:"methodologies,omitempty"`
	Achievements       []string `json:"achievements,omitempty"`
	LocationPreference string   `json:"location_preference,omitempty"`
	TravelOk           bool     `json:"travel_ok,omitempty"`
	RelocationOk       bool     `json:"relocation_ok,omitempty"`
}

// Tokens returns the lower-cased union of skills, technologies and
// methodologies. Case is preserved in the profile itself; comparison is
// always case-insensitive.
func (p *CandidateProfile) Tokens() map[string]bool {
	tokens := make(map[string]bool)
	for _, group := range [][]string{p.Skills, p.Technologies, p.Methodologies} {
		for _, entry := range group {
			entry = strings.ToLower(strings.TrimSpace(entry))
			if entry != "" {
				tokens[entry] = true
			}
		}
	}
	return tokens
}

// HasBachelor reports whether the free-text degree mentions a bachelor's.
func (p *CandidateProfile) HasBachelor() bool {
	return strings.Contains(strings.ToLower(p.Degree), "bachelor")
}

// ExperienceEntry is one employment record. Bullet order is the original
// resume order and matters for recency-biased rendering downstream.
type ExperienceEntry struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Location string   `json:"location,omitempty"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets"`
}
