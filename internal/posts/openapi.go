package posts

import "github.com/JaimeStill/wordmap/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Create *openapi.Operation
}

// Spec contains OpenAPI operation definitions for post endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List posts",
		Description: "Returns a paginated list of posts, newest first by default",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches title or body", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of posts", "PostPageResult"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create post",
		RequestBody: openapi.RequestBodyJSON("CreatePostCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Post created", "Post"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the component schemas used by post operations.
func Schemas() map[string]*openapi.Schema {
	post := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":         {Type: "string", Format: "uuid"},
			"title":      {Type: "string"},
			"body":       {Type: "string"},
			"created_at": {Type: "string", Format: "date-time"},
			"updated_at": {Type: "string", Format: "date-time"},
		},
	}

	return map[string]*openapi.Schema{
		"Post": post,
		"CreatePostCommand": {
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]*openapi.Schema{
				"title": {Type: "string", MaxLength: openapi.Ptr(MaxTitleLength)},
				"body":  {Type: "string"},
			},
		},
		"PostPageResult": openapi.PageResultSchema("Post"),
	}
}
