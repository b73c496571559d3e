package words

import "github.com/JaimeStill/wordmap/pkg/openapi"

type spec struct {
	List             *openapi.Operation
	Add              *openapi.Operation
	Delete           *openapi.Operation
	ClearCoordinates *openapi.Operation
	SaveCoordinates  *openapi.Operation
	Coordinates      *openapi.Operation
}

func idInput(name, description string) []*openapi.Parameter {
	return []*openapi.Parameter{
		{
			Name:        name,
			In:          "query",
			Description: description + ". May instead be sent as a JSON body field",
			Schema:      &openapi.Schema{Type: "string", Format: "uuid"},
		},
	}
}

// Spec contains OpenAPI operation definitions for word endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List words",
		Description: "Returns every word ordered by word, for populating the word dropdown",
		Parameters: []*openapi.Parameter{
			{Name: "image_id", In: "query", Description: "Only words attached to this image", Schema: &openapi.Schema{Type: "string", Format: "uuid"}},
			openapi.QueryParam("search", "string", "Word contains (case-insensitive)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Words", "Word"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Add: &openapi.Operation{
		Summary:     "Add word",
		RequestBody: openapi.RequestBodyJSON("AddWordCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Word added", "Word"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete word",
		Parameters: idInput("id", "Word UUID"),
		Responses: map[int]*openapi.Response{
			204: {Description: "Word deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ClearCoordinates: &openapi.Operation{
		Summary:     "Clear coordinates",
		Description: "Removes the coordinate set of a word. The word itself is kept",
		Parameters:  idInput("word_id", "Word UUID"),
		Responses: map[int]*openapi.Response{
			204: {Description: "Coordinates cleared"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	SaveCoordinates: &openapi.Operation{
		Summary:     "Save coordinates",
		Description: "Replaces the coordinate set of a word. Pen strokes are joined into one path by nearest endpoint",
		RequestBody: openapi.RequestBodyJSON("SaveCoordinatesCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Word updated", "Word"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Coordinates: &openapi.Operation{
		Summary:    "Get coordinates",
		Parameters: []*openapi.Parameter{openapi.PathParam("word_id", "Word UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Coordinate set", "WordCoordinates"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas used by word operations.
func Schemas() map[string]*openapi.Schema {
	point := &openapi.Schema{
		Type:        "array",
		Description: "[x, y]",
		Items:       &openapi.Schema{Type: "number", Minimum: openapi.Ptr(0.0)},
		MinItems:    openapi.Ptr(2),
		MaxItems:    openapi.Ptr(2),
	}
	coords := &openapi.Schema{
		Type:     "array",
		Items:    point,
		MinItems: openapi.Ptr(1),
		MaxItems: openapi.Ptr(MaxPoints),
	}

	return map[string]*openapi.Schema{
		"Coordinates": coords,
		"Word": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"word":        {Type: "string"},
				"image_id":    {Type: "string", Format: "uuid"},
				"coordinates": openapi.SchemaRef("Coordinates"),
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"WordCoordinates": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"word_id":     {Type: "string", Format: "uuid"},
				"coordinates": openapi.SchemaRef("Coordinates"),
			},
		},
		"AddWordCommand": {
			Type:     "object",
			Required: []string{"word"},
			Properties: map[string]*openapi.Schema{
				"word":     {Type: "string", MaxLength: openapi.Ptr(MaxWordLength)},
				"image_id": {Type: "string", Format: "uuid"},
			},
		},
		"SaveCoordinatesCommand": {
			Type:     "object",
			Required: []string{"word_id"},
			Properties: map[string]*openapi.Schema{
				"word_id":     {Type: "string", Format: "uuid"},
				"coordinates": openapi.SchemaRef("Coordinates"),
				"strokes":     {Type: "array", Items: openapi.SchemaRef("Coordinates")},
			},
		},
	}
}
