package config

import (
	"github.com/JaimeStill/wordmap/pkg/database"
	"github.com/JaimeStill/wordmap/pkg/logging"
	"github.com/JaimeStill/wordmap/pkg/middleware"
	"github.com/JaimeStill/wordmap/pkg/openapi"
	"github.com/JaimeStill/wordmap/pkg/pagination"
	"github.com/JaimeStill/wordmap/pkg/storage"
	"github.com/JaimeStill/wordmap/pkg/telemetry"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
	SSLMode:         "DATABASE_SSL_MODE",
	AutoMigrate:     "DATABASE_AUTO_MIGRATE",
}

var loggingEnv = &logging.Env{
	Level:     "LOGGING_LEVEL",
	Format:    "LOGGING_FORMAT",
	AddSource: "LOGGING_ADD_SOURCE",
}

var storageEnv = &storage.Env{
	BasePath:      "STORAGE_BASE_PATH",
	MaxUploadSize: "STORAGE_MAX_UPLOAD_SIZE",
}

var telemetryEnv = &telemetry.Env{
	Enabled:        "TELEMETRY_ENABLED",
	Endpoint:       "TELEMETRY_ENDPOINT",
	ServiceName:    "TELEMETRY_SERVICE_NAME",
	Insecure:       "TELEMETRY_INSECURE",
	ExportMetrics:  "TELEMETRY_EXPORT_METRICS",
	ExportLogs:     "TELEMETRY_EXPORT_LOGS",
	MetricInterval: "TELEMETRY_METRIC_INTERVAL",
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
	Servers:     "API_OPENAPI_SERVERS",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
}
