package images

import "github.com/JaimeStill/wordmap/pkg/openapi"

type spec struct {
	Upload *openapi.Operation
	List   *openapi.Operation
	Names  *openapi.Operation
	Delete *openapi.Operation
	File   *openapi.Operation
}

// Spec contains OpenAPI operation definitions for image endpoints.
var Spec = spec{
	Upload: &openapi.Operation{
		Summary:     "Upload image",
		Description: "Upload a png, jpeg, gif, webp, bmp or tiff image. The name defaults to the filename without extension",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file": {Type: "string", Format: "binary", Description: "Image file to upload"},
							"name": {Type: "string", Description: "Optional unique name", MaxLength: openapi.Ptr(MaxNameLength)},
						},
						Required: []string{"file"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Image uploaded", "Image"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List images",
		Description: "Returns a paginated list of images, newest first by default",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches name or filename", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("content_type", "string", "Exact content type, e.g. image/png", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Images", "ImagePageResult"),
		},
	},
	Names: &openapi.Operation{
		Summary:     "List image names",
		Description: "Returns every image name in alphabetical order",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Image names",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}},
				},
			},
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete image",
		Description: "Deletes an image by name along with the words attached to it",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("name", "string", "Image name. May instead be sent as a JSON body field", false),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Image deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	File: &openapi.Operation{
		Summary:    "Download image",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Image UUID")},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Image bytes",
				Content: map[string]*openapi.MediaType{
					"image/*": {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas used by image operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Image": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"name":         {Type: "string"},
				"filename":     {Type: "string"},
				"content_type": {Type: "string"},
				"width":        {Type: "integer"},
				"height":       {Type: "integer"},
				"size_bytes":   {Type: "integer", Format: "int64"},
				"storage_key":  {Type: "string"},
				"file":         {Type: "string", Format: "uri-reference"},
				"created_at":   {Type: "string", Format: "date-time"},
			},
		},
		"ImagePageResult": openapi.PageResultSchema("Image"),
	}
}
