package api

import (
	"github.com/JaimeStill/event-builder/internal/events"
	"github.com/JaimeStill/event-builder/internal/uploads"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Events  events.System
	Uploads uploads.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Events: events.New(
			runtime.Database.Connection(),
			runtime.Logger,
		),
		Uploads: uploads.New(
			runtime.Storage,
			runtime.BasePath+"/uploads",
			runtime.Logger,
		),
	}
}
