package images

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNameLength is the longest accepted image name, in characters.
const MaxNameLength = 255

// Image is an uploaded picture that words are traced on.
type Image struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"`
	File        string    `json:"file"`
	CreatedAt   time.Time `json:"created_at"`
}

// UploadCommand carries an uploaded file and its optional display name.
type UploadCommand struct {
	Name     string
	Filename string
	Data     []byte
}

// Normalize defaults Name to the sanitized filename without extension and
// validates the result.
func (c *UploadCommand) Normalize() error {
	c.Filename = sanitizeFilename(c.Filename)
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		c.Name = strings.TrimSuffix(c.Filename, filepath.Ext(c.Filename))
	}
	if c.Name == "" || c.Name == "." {
		return fmt.Errorf("%w: name is required", ErrInvalidFile)
	}
	if utf8.RuneCountInString(c.Name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidFile, MaxNameLength)
	}
	if len(c.Data) == 0 {
		return fmt.Errorf("%w: file is empty", ErrInvalidFile)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}

	replacer := strings.NewReplacer(
		" ", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}

func buildStorageKey(id uuid.UUID, filename string) string {
	if filename == "" {
		filename = "image"
	}
	return fmt.Sprintf("images/%s/%s", id.String(), filename)
}
