package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentFieldAccessors(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := Document{
		ID: "abc123",
		Data: map[string]interface{}{
			"title":     "Demo",
			"read":      true,
			"createdAt": created,
			"tags":      []interface{}{"React", "Go"},
		},
	}

	assert.Equal(t, "Demo", doc.String("title"))
	assert.True(t, doc.Bool("read"))
	assert.Equal(t, created, doc.Time("createdAt"))
	assert.Equal(t, []string{"React", "Go"}, doc.StringSlice("tags"))
}

func TestDocumentFieldAccessors_MissingOrMistyped(t *testing.T) {
	doc := Document{
		ID: "x",
		Data: map[string]interface{}{
			"title": 42,
			"tags":  "not-a-slice",
		},
	}

	assert.Empty(t, doc.String("title"))
	assert.Empty(t, doc.String("absent"))
	assert.False(t, doc.Bool("absent"))
	assert.True(t, doc.Time("absent").IsZero())
	assert.Nil(t, doc.StringSlice("tags"))
	assert.Nil(t, doc.StringSlice("absent"))
}

func TestDocumentStringSlice_SkipsNonStrings(t *testing.T) {
	doc := Document{
		Data: map[string]interface{}{
			"tags": []interface{}{"Go", 7, "Firestore", nil},
		},
	}

	assert.Equal(t, []string{"Go", "Firestore"}, doc.StringSlice("tags"))
}
