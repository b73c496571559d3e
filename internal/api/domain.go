package api

import (
	"github.com/JaimeStill/wordmap/internal/images"
	"github.com/JaimeStill/wordmap/internal/posts"
	"github.com/JaimeStill/wordmap/internal/words"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Posts  posts.System
	Words  words.System
	Images images.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Posts:  posts.New(db, runtime.Logger, runtime.Pagination),
		Words:  words.New(db, runtime.Logger),
		Images: images.New(db, runtime.Storage, runtime.Logger, runtime.Pagination),
	}
}
