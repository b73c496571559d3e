package words

import (
	"context"

	"github.com/google/uuid"
)

// System defines word and coordinate storage.
type System interface {
	List(ctx context.Context, filters Filters) ([]Word, error)
	Find(ctx context.Context, id uuid.UUID) (*Word, error)
	Add(ctx context.Context, cmd AddCommand) (*Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SaveCoordinates(ctx context.Context, id uuid.UUID, coords Coordinates) (*Word, error)
	ClearCoordinates(ctx context.Context, id uuid.UUID) error
}
