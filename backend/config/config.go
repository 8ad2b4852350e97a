package config

import (
	"fmt"
	"strings"

	"github.com/fitquest/fitquest-api/fitquest"
)

// WebAppConfig contains web-specific configuration
type WebAppConfig struct {
	Config      *fitquest.Config
	Debug       bool
	Environment string
}

// NewWebAppConfig creates a new web app configuration
func NewWebAppConfig(cfg *fitquest.Config) *WebAppConfig {
	environment := cfg.Web.Environment
	return &WebAppConfig{
		Config:      cfg,
		Debug:       environment != "production",
		Environment: environment,
	}
}

// IsProduction gates secure-only cookies.
func (w *WebAppConfig) IsProduction() bool {
	return w.Environment == "production"
}

// GetWebConfig returns the web configuration
func (w *WebAppConfig) GetWebConfig() fitquest.WebConfig {
	return w.Config.Web
}

// GetAuthConfig returns the sign-in configuration
func (w *WebAppConfig) GetAuthConfig() fitquest.AuthConfig {
	return w.Config.Auth
}

// Address is the host:port the API listens on.
func (w *WebAppConfig) Address() string {
	return fmt.Sprintf("%s:%d", w.Config.Web.Host, w.Config.Web.Port)
}

// RealtimeAddress is empty when the websocket listener is disabled.
func (w *WebAppConfig) RealtimeAddress() string {
	if w.Config.Web.RealtimePort == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", w.Config.Web.Host, w.Config.Web.RealtimePort)
}

// AllowedOrigins joins the configured origins for the CORS middleware.
func (w *WebAppConfig) AllowedOrigins() string {
	return strings.Join(w.Config.Web.AllowedOrigins, ",")
}
