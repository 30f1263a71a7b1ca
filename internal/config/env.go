package config

import (
	"github.com/JaimeStill/event-builder/pkg/database"
	"github.com/JaimeStill/event-builder/pkg/logging"
	"github.com/JaimeStill/event-builder/pkg/middleware"
	"github.com/JaimeStill/event-builder/pkg/openapi"
	"github.com/JaimeStill/event-builder/pkg/storage"
	"github.com/JaimeStill/event-builder/pkg/tracing"
)

var databaseEnv = &database.Env{
	DSN:             "DATABASE_URL",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
	AutoMigrate:     "DATABASE_AUTO_MIGRATE",
}

var loggingEnv = &logging.Env{
	Level:     "LOGGING_LEVEL",
	Format:    "LOGGING_FORMAT",
	AddSource: "LOGGING_ADD_SOURCE",
}

var storageEnv = &storage.Env{
	BasePath:      "UPLOAD_DIR",
	MaxUploadSize: "STORAGE_MAX_UPLOAD_SIZE",
}

var tracingEnv = &tracing.Env{
	Enabled:     "TRACING_ENABLED",
	Exporter:    "TRACING_EXPORTER",
	ServiceName: "TRACING_SERVICE_NAME",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
	ServerURL:   "API_OPENAPI_SERVER_URL",
}
