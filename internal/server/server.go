// internal/server/server.go
//
// HTTP server construction with robust timeouts.
//
// Production hardening recommends:
//
//   • ReadTimeout   – abort slow-loris headers (10 s)
//   • WriteTimeout  – cap total response time (configurable)
//   • IdleTimeout   – close keep-alives on idle clients (60 s)
//
// This helper centralises those defaults so cmd/authd doesn’t repeat
// boilerplate.

package server

import (
	"net/http"
	"time"

	"github.com/yanizio/authd/internal/config"
)

// New constructs an *http.Server bound per the server configuration.
// The configured request timeout caps the write deadline; read and idle
// deadlines use fixed hardening defaults.
func New(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	write := time.Duration(cfg.Timeout) * time.Second
	if write <= 0 {
		write = 15 * time.Second
	}
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: write,
		IdleTimeout:  60 * time.Second,
	}
}
