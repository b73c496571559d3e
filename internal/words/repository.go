package words

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/pkg/query"
	"github.com/JaimeStill/wordmap/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the words System backed by db.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "words"),
	}
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Word, error) {
	qb := filters.Apply(query.NewBuilder(projection, defaultSort))

	q, args := qb.BuildList()
	words, err := repository.QueryMany(ctx, r.db, q, args, scanWord)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	return words, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Word, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	w, err := repository.QueryOne(ctx, r.db, q, args, scanWord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &w, nil
}

func (r *repo) Add(ctx context.Context, cmd AddCommand) (*Word, error) {
	if err := cmd.Normalize(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO words (id, word, image_id)
		VALUES ($1, $2, $3)
		RETURNING ` + returning

	var imageID uuid.NullUUID
	if cmd.ImageID != nil {
		imageID = uuid.NullUUID{UUID: *cmd.ImageID, Valid: true}
	}

	w, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Word, error) {
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), cmd.Word, imageID}, scanWord)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrImageNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("word added", "id", w.ID, "word", w.Word)
	return &w, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM words WHERE id = $1", id)
		return struct{}{}, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("word deleted", "id", id)
	return nil
}

func (r *repo) SaveCoordinates(ctx context.Context, id uuid.UUID, coords Coordinates) (*Word, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE words
		SET coordinates = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + returning

	w, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Word, error) {
		return repository.QueryOne(ctx, tx, q, []any{coords, id}, scanWord)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("coordinates saved", "id", w.ID, "points", len(coords))
	return &w, nil
}

func (r *repo) ClearCoordinates(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx,
			"UPDATE words SET coordinates = NULL, updated_at = NOW() WHERE id = $1", id)
		return struct{}{}, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("coordinates cleared", "id", id)
	return nil
}
