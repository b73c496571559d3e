package posts

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength is the longest accepted post title, in characters.
const MaxTitleLength = 200

// Post is an entry in the feed.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand contains the fields for creating a post.
type CreateCommand struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Normalize trims the title and validates it.
func (c *CreateCommand) Normalize() error {
	c.Title = strings.TrimSpace(c.Title)

	if c.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if utf8.RuneCountInString(c.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalid, MaxTitleLength)
	}
	return nil
}
