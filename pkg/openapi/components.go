package openapi

// NewComponents returns components seeded with the schemas and responses
// shared by every domain: PageRequest plus the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Minimum: Ptr(1.0), Default: 1},
					"page_size": {Type: "integer", Minimum: Ptr(1.0)},
					"search":    {Type: "string"},
					"sort":      {Type: "string", Description: "Comma-separated fields, '-' prefix for descending"},
				},
			},
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string"},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorResponse("Invalid request"),
			"NotFound":        errorResponse("Resource not found"),
			"Conflict":        errorResponse("Resource already exists"),
			"PayloadTooLarge": errorResponse("Request body exceeds the configured limit"),
		},
	}
}

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// AddSchemas merges schemas into the component set.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the component set.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}

// PageResultSchema describes a pagination.PageResult whose data items reference item.
func PageResultSchema(item string) *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"data":        {Type: "array", Items: SchemaRef(item)},
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
			"has_next":    {Type: "boolean"},
		},
	}
}
