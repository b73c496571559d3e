package images

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/pkg/pagination"
)

// System defines image storage and metadata operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Image], error)
	Names(ctx context.Context) ([]string, error)
	Find(ctx context.Context, id uuid.UUID) (*Image, error)
	Upload(ctx context.Context, cmd UploadCommand) (*Image, error)
	DeleteByName(ctx context.Context, name string) error
	Open(ctx context.Context, id uuid.UUID) (*Image, []byte, error)
}
