package uploads

import "github.com/JaimeStill/event-builder/pkg/openapi"

type spec struct {
	Upload *openapi.Operation
	Serve  *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the upload endpoints.
var Spec = spec{
	Upload: &openapi.Operation{
		Summary:     "Upload file",
		Description: "Stores the multipart file field under a random name that keeps the original extension",
		RequestBody: openapi.RequestBodyMultipart(FormField),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Public URL of the stored file", "UploadResult"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Serve: &openapi.Operation{
		Summary:     "Download file",
		Description: "Returns the stored bytes with a content type derived from the extension",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("name", "Stored file name"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseBinary("File content"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the upload domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"UploadResult": {
			Type:     "object",
			Required: []string{"url"},
			Properties: map[string]*openapi.Schema{
				"url": {Type: "string", Example: "/api/uploads/3f9a0c1d2b4e5f60.png"},
			},
		},
	}
}
