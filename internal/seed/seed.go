// Package seed populates the database with starter posts and words. Seed
// data is embedded at compile time and may be replaced by an external file.
package seed

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/internal/posts"
	"github.com/JaimeStill/wordmap/internal/words"
)

//go:embed seeds/*.json
var seedFiles embed.FS

const defaultFile = "seeds/wordmap.json"

// Word is a seeded word with an optional coordinate set given either as a
// ready path or as pen strokes.
type Word struct {
	Word        string              `json:"word"`
	Coordinates words.Coordinates   `json:"coordinates,omitempty"`
	Strokes     []words.Coordinates `json:"strokes,omitempty"`
}

// Data is the seed file structure.
type Data struct {
	Posts []posts.CreateCommand `json:"posts"`
	Words []Word                `json:"words"`
}

// Load reads seed data from path, or the embedded default when path is empty,
// and validates every entry.
func Load(path string) (*Data, error) {
	var content []byte
	var err error

	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile(defaultFile)
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data Data
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	if err := data.normalize(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) normalize() error {
	for i := range d.Posts {
		if err := d.Posts[i].Normalize(); err != nil {
			return fmt.Errorf("post %d: %w", i, err)
		}
	}

	for i := range d.Words {
		w := &d.Words[i]

		cmd := words.AddCommand{Word: w.Word}
		if err := cmd.Normalize(); err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
		w.Word = cmd.Word

		if w.Coordinates == nil && w.Strokes == nil {
			continue
		}

		coords, err := words.SaveCoordinatesCommand{
			WordID:      uuid.New(),
			Coordinates: w.Coordinates,
			Strokes:     w.Strokes,
		}.Resolve()
		if err != nil {
			return fmt.Errorf("word %q: %w", w.Word, err)
		}
		w.Coordinates = coords
		w.Strokes = nil
	}

	return nil
}

// Result counts the rows written by Run.
type Result struct {
	Posts int
	Words int
}

// Run writes data inside a single transaction. Posts are skipped when a post
// with the same title exists; unattached words are upserted by word.
func Run(ctx context.Context, db *sql.DB, data *Data) (Result, error) {
	var res Result

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range data.Posts {
		r, err := tx.ExecContext(ctx, `
			INSERT INTO posts (id, title, body)
			SELECT $1::uuid, $2::text, $3::text
			WHERE NOT EXISTS (SELECT 1 FROM posts WHERE title = $2::text)`,
			uuid.New(), p.Title, p.Body)
		if err != nil {
			return res, fmt.Errorf("seed post %q: %w", p.Title, err)
		}
		n, _ := r.RowsAffected()
		res.Posts += int(n)
	}

	for _, w := range data.Words {
		r, err := tx.ExecContext(ctx, `
			INSERT INTO words (id, word, coordinates)
			VALUES ($1, $2, $3)
			ON CONFLICT (image_id, word) DO UPDATE
			SET coordinates = EXCLUDED.coordinates, updated_at = NOW()`,
			uuid.New(), w.Word, w.Coordinates)
		if err != nil {
			return res, fmt.Errorf("seed word %q: %w", w.Word, err)
		}
		n, _ := r.RowsAffected()
		res.Words += int(n)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit transaction: %w", err)
	}
	return res, nil
}
