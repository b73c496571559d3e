package words

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/pkg/query"
	"github.com/JaimeStill/wordmap/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "words", "w").
	Project("id", "ID").
	Project("word", "Word").
	Project("image_id", "ImageID").
	Project("coordinates", "Coordinates").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Word"}

const returning = "id, word, image_id, coordinates, created_at, updated_at"

func scanWord(s repository.Scanner) (Word, error) {
	var w Word
	var imageID uuid.NullUUID

	if err := s.Scan(&w.ID, &w.Word, &imageID, &w.Coordinates, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return w, err
	}
	if imageID.Valid {
		w.ImageID = &imageID.UUID
	}
	return w, nil
}

// Filters contains optional criteria for word_list.
type Filters struct {
	ImageID *uuid.UUID
	Search  *string
}

// FiltersFromQuery extracts filters from URL query parameters.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if v := values.Get("image_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fmt.Errorf("%w: image_id: %v", ErrInvalid, err)
		}
		f.ImageID = &id
	}

	if v := values.Get("search"); v != "" {
		f.Search = &v
	}

	return f, nil
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.ImageID != nil {
		b.WhereEquals("ImageID", *f.ImageID)
	}
	return b.WhereContains("Word", f.Search)
}
