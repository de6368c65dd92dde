package models

import "time"

// Clip is a user-saved article. Clips live in process memory only and are
// lost on restart. Saving the same URL twice yields two clips with distinct
// IDs.
type Clip struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
