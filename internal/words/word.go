package words

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxWordLength is the longest accepted word, in characters.
const MaxWordLength = 100

// Word is a label attached to an image, optionally traced by a coordinate set.
type Word struct {
	ID          uuid.UUID   `json:"id"`
	Word        string      `json:"word"`
	ImageID     *uuid.UUID  `json:"image_id"`
	Coordinates Coordinates `json:"coordinates"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WordCoordinates is the word_coordinates response body.
type WordCoordinates struct {
	WordID      uuid.UUID   `json:"word_id"`
	Coordinates Coordinates `json:"coordinates"`
}

// AddCommand contains the fields for adding a word.
type AddCommand struct {
	Word    string     `json:"word"`
	ImageID *uuid.UUID `json:"image_id,omitempty"`
}

// Normalize trims the word and validates it.
func (c *AddCommand) Normalize() error {
	c.Word = strings.TrimSpace(c.Word)

	if c.Word == "" {
		return fmt.Errorf("%w: word is required", ErrInvalid)
	}
	if utf8.RuneCountInString(c.Word) > MaxWordLength {
		return fmt.Errorf("%w: word exceeds %d characters", ErrInvalid, MaxWordLength)
	}
	return nil
}

// SaveCoordinatesCommand replaces a word's coordinate set. Exactly one of
// Coordinates or Strokes must be given; strokes are joined with OrderStrokes.
type SaveCoordinatesCommand struct {
	WordID      uuid.UUID     `json:"word_id"`
	Coordinates Coordinates   `json:"coordinates,omitempty"`
	Strokes     []Coordinates `json:"strokes,omitempty"`
}

// Resolve validates the command and returns the coordinate set to store.
func (c SaveCoordinatesCommand) Resolve() (Coordinates, error) {
	if c.WordID == uuid.Nil {
		return nil, fmt.Errorf("%w: word_id is required", ErrInvalid)
	}

	hasCoords := c.Coordinates != nil
	hasStrokes := c.Strokes != nil

	if hasCoords == hasStrokes {
		return nil, fmt.Errorf("%w: provide exactly one of coordinates or strokes", ErrInvalid)
	}

	coords := c.Coordinates
	if hasStrokes {
		coords = OrderStrokes(c.Strokes)
	}

	if err := coords.Validate(); err != nil {
		return nil, err
	}
	return coords, nil
}
