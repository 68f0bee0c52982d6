package httpx

// Paths relative to the project root, used when serving from disk in dev mode.
const (
	TemplatePathFromRoot = "frontend/templates"
	StaticPathFromRoot   = "frontend/static"
)

// Mount points below the base path.
const (
	APIPrefix    = "/api/"
	StaticPrefix = "/static/"
	LogoutPath   = "/session/logout"
	HealthPath   = "/healthz"
)

// HeaderRequestID carries the request ID to the backend and back to the client.
const HeaderRequestID = "X-Request-ID"
