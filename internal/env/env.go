package env

import "os"

// Environment names supported by the service.
const (
	Development = "development"
	Preview     = "preview"
	Production  = "production"
)

// Current returns the environment name, defaulting to development when
// APP_ENV is unset or carries an unknown value.
func Current() string {
	switch env := os.Getenv("APP_ENV"); env {
	case Development, Preview, Production:
		return env
	default:
		return Development
	}
}

// SiteURL returns the public base URL of the site. Read from the
// environment on every call so redirect targets follow config changes
// without a restart.
func SiteURL() string {
	if v := os.Getenv("SITE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

// AuthRedirectURL returns the URL the identity provider sends users back
// to after email verification or password recovery.
func AuthRedirectURL() string {
	if v := os.Getenv("AUTH_REDIRECT_URL"); v != "" {
		return v
	}
	return SiteURL() + "/auth/token"
}
