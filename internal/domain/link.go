package domain

import "time"

// Link is the short link a click belongs to. Its lifecycle is owned by the
// link service; analytics only reads it and bumps ClickCount.
type Link struct {
	ID          string
	UserID      string
	Alias       string
	OriginalURL string
	ClickCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
