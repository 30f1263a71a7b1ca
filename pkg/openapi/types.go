// Package openapi provides types and helpers for building an OpenAPI 3.1
// document from route definitions when the API module is assembled.
package openapi

import "encoding/json"

// Spec is the root of the generated document served at /openapi.json.
type Spec struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// PathItem holds the operations registered on one path. The service only
// routes GET, POST and DELETE.
type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

// Parameter is a path parameter; no route here takes query or header input.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Required    bool                  `json:"required,omitempty"`
	Content     map[string]*MediaType `json:"content"`
}

// Response is either inline content or a $ref into components/responses.
type Response struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is a JSON Schema (2020-12) subset. Object properties are schemas
// themselves, so nested pages and image lists reuse the same type.
// Nullable renders Type as a ["type", "null"] pair.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Nullable    bool               `json:"-"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Example     any                `json:"example,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	type plain Schema
	if !s.Nullable || s.Type == "" {
		return json.Marshal((*plain)(s))
	}
	return json.Marshal(struct {
		Type []string `json:"type"`
		*plain
	}{
		Type:  []string{s.Type, "null"},
		plain: (*plain)(s),
	})
}

type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// SchemaRef points at a named schema in components/schemas.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ArrayOf wraps item in an array schema.
func ArrayOf(item *Schema) *Schema {
	return &Schema{Type: "array", Items: item}
}

// ResponseRef points at a shared error response in components/responses.
func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

// RequestBodyJSON expects a JSON body matching the named schema.
func RequestBodyJSON(schemaName string, required bool) *RequestBody {
	return &RequestBody{
		Required: required,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef(schemaName)},
		},
	}
}

// RequestBodyMultipart expects a multipart form carrying one binary file in field.
func RequestBodyMultipart(field string) *RequestBody {
	return &RequestBody{
		Required: true,
		Content: map[string]*MediaType{
			"multipart/form-data": {
				Schema: &Schema{
					Type:     "object",
					Required: []string{field},
					Properties: map[string]*Schema{
						field: {Type: "string", Format: "binary"},
					},
				},
			},
		},
	}
}

// ResponseJSON returns content of the named schema as application/json.
func ResponseJSON(description, schemaName string) *Response {
	return ResponseJSONSchema(description, SchemaRef(schemaName))
}

// ResponseJSONSchema returns content described by an inline schema.
func ResponseJSONSchema(description string, schema *Schema) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: schema},
		},
	}
}

// ResponseBinary returns raw stored bytes; the actual media type comes from
// the file extension at request time.
func ResponseBinary(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/octet-stream": {Schema: &Schema{Type: "string", Format: "binary"}},
		},
	}
}

// PathParam creates a required string path parameter such as {id} or {name}.
func PathParam(name, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "path",
		Required:    true,
		Description: description,
		Schema:      &Schema{Type: "string"},
	}
}
