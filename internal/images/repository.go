package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/JaimeStill/wordmap/pkg/pagination"
	"github.com/JaimeStill/wordmap/pkg/query"
	"github.com/JaimeStill/wordmap/pkg/repository"
	"github.com/JaimeStill/wordmap/pkg/storage"
)

const instrumentation = "github.com/JaimeStill/wordmap/internal/images"

var tracer = otel.Tracer(instrumentation)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
	metrics    uploadMetrics
}

// uploadMetrics counts upload attempts by outcome and records accepted sizes.
type uploadMetrics struct {
	uploads metric.Int64Counter
	bytes   metric.Int64Histogram
}

func newUploadMetrics(logger *slog.Logger) uploadMetrics {
	meter := otel.Meter(instrumentation)

	uploads, err := meter.Int64Counter(
		"wordmap.images.uploads",
		metric.WithDescription("Image upload attempts by outcome"),
		metric.WithUnit("{upload}"),
	)
	if err != nil {
		logger.Warn("upload counter unavailable", "error", err)
	}

	bytes, err := meter.Int64Histogram(
		"wordmap.images.upload_size",
		metric.WithDescription("Size of accepted image uploads"),
		metric.WithUnit("By"),
	)
	if err != nil {
		logger.Warn("upload size histogram unavailable", "error", err)
	}

	return uploadMetrics{uploads: uploads, bytes: bytes}
}

func (m uploadMetrics) record(ctx context.Context, img *Image, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	if m.uploads != nil {
		m.uploads.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
	if m.bytes != nil && img != nil {
		m.bytes.Record(ctx, img.SizeBytes, metric.WithAttributes(attribute.String("content_type", img.ContentType)))
	}
}

// New creates the images System backed by db for metadata and store for bytes.
func New(db *sql.DB, store storage.System, logger *slog.Logger, pagination pagination.Config) System {
	logger = logger.With("system", "images")
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger,
		pagination: pagination,
		metrics:    newUploadMetrics(logger),
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Image], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Filename")

	filters.Apply(qb)
	qb.OrderByFields(page.Sort)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count images: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	imgs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanImage)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}

	result := pagination.NewPageResult(imgs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Names(ctx context.Context) ([]string, error) {
	names, err := repository.QueryMany(ctx, r.db, "SELECT name FROM images ORDER BY name", nil, scanName)
	if err != nil {
		return nil, fmt.Errorf("query image names: %w", err)
	}
	return names, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Image, error) {
	return r.findBy(ctx, "ID", id)
}

func (r *repo) findBy(ctx context.Context, field string, value any) (*Image, error) {
	q, args := query.NewBuilder(projection).BuildSingle(field, value)

	img, err := repository.QueryOne(ctx, r.db, q, args, scanImage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &img, nil
}

func (r *repo) Upload(ctx context.Context, cmd UploadCommand) (*Image, error) {
	ctx, span := tracer.Start(ctx, "images.upload")
	defer span.End()

	img, err := r.upload(ctx, cmd)
	r.metrics.record(ctx, img, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("image.id", img.ID.String()),
		attribute.String("image.content_type", img.ContentType),
		attribute.Int64("image.size_bytes", img.SizeBytes),
	)
	return img, nil
}

func (r *repo) upload(ctx context.Context, cmd UploadCommand) (*Image, error) {
	if err := cmd.Normalize(); err != nil {
		return nil, err
	}

	info, err := Inspect(cmd.Data)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	storageKey := buildStorageKey(id, cmd.Filename)

	if err := r.storage.Store(ctx, storageKey, cmd.Data); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	q := `
		INSERT INTO images (id, name, filename, content_type, width, height, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + returning

	img, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Image, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.Name, cmd.Filename, info.ContentType, info.Width, info.Height, int64(len(cmd.Data)), storageKey,
		}, scanImage)
	})
	if err != nil {
		if delErr := r.storage.Delete(ctx, storageKey); delErr != nil {
			r.logger.Error("cleanup failed after db error", "storage_key", storageKey, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("image uploaded",
		"id", img.ID,
		"name", img.Name,
		"dimensions", fmt.Sprintf("%dx%d", img.Width, img.Height),
		"size", humanize.IBytes(uint64(img.SizeBytes)),
	)
	return &img, nil
}

func (r *repo) DeleteByName(ctx context.Context, name string) error {
	img, err := r.findBy(ctx, "Name", name)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM images WHERE id = $1", img.ID)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, img.StorageKey); err != nil {
		r.logger.Error("storage cleanup failed", "storage_key", img.StorageKey, "error", err)
	}

	r.logger.Info("image deleted", "id", img.ID, "name", img.Name)
	return nil
}

func (r *repo) Open(ctx context.Context, id uuid.UUID) (*Image, []byte, error) {
	img, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	data, err := r.storage.Retrieve(ctx, img.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: stored file missing", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("retrieve image: %w", err)
	}
	return img, data, nil
}
