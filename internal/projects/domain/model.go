package domain

import (
	"strings"
	"time"
)

// Project is one portfolio entry. IDs and creation timestamps are assigned
// by the store; this process never generates or reuses them.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty"`
	LiveURL     string    `json:"live_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Draft carries the validated fields of a project about to be created.
// The store fills in ID and CreatedAt.
type Draft struct {
	Title       string
	Description string
	Tags        []string
	Image       string
	RepoURL     string
	LiveURL     string
}

// ParseTags splits a comma-separated input into trimmed tags, dropping
// empties and preserving order. Tags are free-form; no uniqueness, no
// taxonomy.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
