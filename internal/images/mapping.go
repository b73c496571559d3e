package images

import (
	"net/url"

	"github.com/JaimeStill/wordmap/pkg/query"
	"github.com/JaimeStill/wordmap/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "images", "i").
	Project("id", "ID").
	Project("name", "Name").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("width", "Width").
	Project("height", "Height").
	Project("size_bytes", "SizeBytes").
	Project("storage_key", "StorageKey").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

const returning = "id, name, filename, content_type, width, height, size_bytes, storage_key, created_at"

func scanImage(s repository.Scanner) (Image, error) {
	var img Image
	err := s.Scan(
		&img.ID,
		&img.Name,
		&img.Filename,
		&img.ContentType,
		&img.Width,
		&img.Height,
		&img.SizeBytes,
		&img.StorageKey,
		&img.CreatedAt,
	)
	return img, err
}

func scanName(s repository.Scanner) (string, error) {
	var name string
	err := s.Scan(&name)
	return name, err
}

// Filters contains optional criteria for list_images.
type Filters struct {
	ContentType *string
}

// FiltersFromQuery extracts image filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("ContentType", f.ContentType)
}
