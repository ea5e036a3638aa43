package domain

import "time"

// Message is one contact-form submission. The read flag is stored but no
// logic hangs off it yet; the dashboard may use it later.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft is a validated submission about to be written. ID and CreatedAt
// come from the store.
type Draft struct {
	Name  string
	Email string
	Body  string
}
