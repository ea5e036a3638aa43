package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/portfolio-backend/internal/store"
)

func TestDecodeProject(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	doc := store.Document{
		ID: "p1",
		Data: map[string]interface{}{
			"title":       "Demo",
			"description": "A demo project",
			"tags":        []interface{}{"React", "Go"},
			"image":       "data:image/jpeg;base64,xxxx",
			"repoUrl":     "https://github.com/owner/demo",
			"liveUrl":     "https://demo.example.com",
			"createdAt":   created,
		},
	}

	p := decodeProject(doc)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Demo", p.Title)
	assert.Equal(t, "A demo project", p.Description)
	assert.Equal(t, []string{"React", "Go"}, p.Tags)
	assert.Equal(t, "data:image/jpeg;base64,xxxx", p.Image)
	assert.Equal(t, "https://github.com/owner/demo", p.RepoURL)
	assert.Equal(t, "https://demo.example.com", p.LiveURL)
	assert.Equal(t, created, p.CreatedAt)
}

func TestDecodeProject_SparseDocument(t *testing.T) {
	doc := store.Document{
		ID:   "p2",
		Data: map[string]interface{}{"title": "Bare"},
	}

	p := decodeProject(doc)
	assert.Equal(t, "Bare", p.Title)
	assert.Empty(t, p.Description)
	assert.Nil(t, p.Tags)
	assert.Empty(t, p.Image)
	assert.True(t, p.CreatedAt.IsZero())
}
