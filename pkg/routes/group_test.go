package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/event-builder/pkg/openapi"
	"github.com/JaimeStill/event-builder/pkg/routes"
)

func writeHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func eventsGroup() routes.Group {
	return routes.Group{
		Prefix: "/events",
		Tags:   []string{"Events"},
		Schemas: map[string]*openapi.Schema{
			"Event": {Type: "object"},
		},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: writeHandler("list"),
				OpenAPI: &openapi.Operation{Summary: "List events"},
			},
			{
				Method:  "GET",
				Pattern: "/{id}",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte("find " + r.PathValue("id")))
				},
				OpenAPI: &openapi.Operation{Summary: "Find event", Tags: []string{"Admin"}},
			},
			{
				Method:  "DELETE",
				Pattern: "/{id}",
				Handler: writeHandler("delete"),
			},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/pages",
				Tags:   []string{"Pages"},
				Routes: []routes.Route{
					{
						Method:  "GET",
						Pattern: "/{pageId}",
						Handler: writeHandler("page"),
						OpenAPI: &openapi.Operation{Summary: "Find page"},
					},
				},
			},
		},
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := eventsGroup()
	group.AddToSpec("/api", spec)

	list := spec.Paths["/api/events"]
	if list == nil || list.Get == nil {
		t.Fatal("GET /api/events not added to spec")
	}

	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Events" {
		t.Errorf("Tags = %v, want [Events]", list.Get.Tags)
	}

	find := spec.Paths["/api/events/{id}"]
	if find.Get.Tags[0] != "Admin" {
		t.Errorf("explicit tags overwritten: %v", find.Get.Tags)
	}

	if find.Delete != nil {
		t.Error("route without OpenAPI operation should not be documented")
	}

	page := spec.Paths["/api/events/{id}/pages/{pageId}"]
	if page == nil || page.Get == nil {
		t.Fatal("child path not added")
	}

	if page.Get.Tags[0] != "Pages" {
		t.Errorf("child Tags = %v, want [Pages]", page.Get.Tags)
	}

	if _, ok := spec.Components.Schemas["Event"]; !ok {
		t.Error("group schema not added to components")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	routes.Register(mux, "/api", spec, eventsGroup())

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/events", "list"},
		{http.MethodGet, "/events/launch", "find launch"},
		{http.MethodDelete, "/events/launch", "delete"},
		{http.MethodGet, "/events/launch/pages/intro", "page"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}

	if spec.Paths["/api/events"] == nil {
		t.Error("Register should document routes under the base path")
	}
}
