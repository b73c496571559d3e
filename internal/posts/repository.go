package posts

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/pkg/pagination"
	"github.com/JaimeStill/wordmap/pkg/query"
	"github.com/JaimeStill/wordmap/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the posts System backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "posts"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Post], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Body").
		OrderByFields(page.Sort)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	posts, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPost)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}

	result := pagination.NewPageResult(posts, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Post, error) {
	if err := cmd.Normalize(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO posts (id, title, body)
		VALUES ($1, $2, $3)
		RETURNING id, title, body, created_at, updated_at`

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Post, error) {
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), cmd.Title, cmd.Body}, scanPost)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("post created", "id", p.ID, "title", p.Title)
	return &p, nil
}
