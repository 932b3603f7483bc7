package configs

import (
	"net/url"
	"time"
)

// Meta configures access to the advertising platform's graph API. The
// BaseURL is overridable so tests and staging can point at a fake server.
type Meta struct {
	// BaseURL is the graph API root, without version segment.
	BaseURL url.URL `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	// Version is the API version path segment.
	Version string `env:"VERSION" envDefault:"v19.0"`
	// Timeout bounds each individual platform call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
