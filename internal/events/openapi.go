package events

import "github.com/JaimeStill/event-builder/pkg/openapi"

type spec struct {
	List     *openapi.Operation
	Upsert   *openapi.Operation
	Find     *openapi.Operation
	FindPage *openapi.Operation
	Delete   *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the event endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List events",
		Description: "Returns every event ordered by updatedAt descending; events without updatedAt come last",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONSchema("All events", openapi.ArrayOf(openapi.SchemaRef("Event"))),
		},
	},
	Upsert: &openapi.Operation{
		Summary:     "Create or replace event",
		Description: "Stores the full event under its id, replacing any existing event with that id",
		RequestBody: openapi.RequestBodyJSON("Event", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Stored event", "Event"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find event by id",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Event id"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Event", "Event"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	FindPage: &openapi.Operation{
		Summary:     "Find page of an event",
		Description: "Returns the first page of the event whose id matches pageId",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Event id"),
			openapi.PathParam("pageId", "Page id"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page", "Page"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete event",
		Description: "Removes the event if it exists; deleting a missing id still succeeds",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Event id"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Deletion acknowledged", "DeleteResult"),
		},
	},
}

// Schemas returns the event domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Event": {
			Type:     "object",
			Required: []string{"id"},
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Example: "spring-gala"},
				"title":     {Type: "string"},
				"pages":     openapi.ArrayOf(openapi.SchemaRef("Page")),
				"styles":    {Type: "string", Description: "CSS applied to every page"},
				"images":    openapi.ArrayOf(&openapi.Schema{Type: "string"}),
				"updatedAt": {Type: "integer", Nullable: true, Format: "int64", Description: "Caller-supplied timestamp used for ordering"},
			},
		},
		"Page": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string"},
				"title":              {Type: "string"},
				"coverUrl":           {Type: "string"},
				"backgroundUrl":      {Type: "string"},
				"html":               {Type: "string"},
				"previewTitle":       {Type: "string"},
				"previewDescription": {Type: "string"},
			},
		},
		"DeleteResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"deleted": {Type: "boolean"},
			},
		},
	}
}
