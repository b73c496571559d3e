package posts

import (
	"context"

	"github.com/JaimeStill/wordmap/pkg/pagination"
)

// System defines post storage and retrieval.
type System interface {
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Post], error)
	Create(ctx context.Context, cmd CreateCommand) (*Post, error)
}
