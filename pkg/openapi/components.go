package openapi

// NewComponents returns the shared error schema and the error responses
// every API package references.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Client errors echo the cause; server errors carry only the status text"},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorResponse("Invalid request"),
			"NotFound":        errorResponse("Resource not found"),
			"PayloadTooLarge": errorResponse("Request body exceeds the upload limit"),
		},
	}
}

// AddSchemas merges schemas into the components.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

func errorResponse(description string) *Response {
	return ResponseJSON(description, "Error")
}
