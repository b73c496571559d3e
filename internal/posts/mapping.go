package posts

import (
	"github.com/JaimeStill/wordmap/pkg/query"
	"github.com/JaimeStill/wordmap/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "posts", "p").
	Project("id", "ID").
	Project("title", "Title").
	Project("body", "Body").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanPost(s repository.Scanner) (Post, error) {
	var p Post
	err := s.Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
