// Package careerfairui provides embedded assets for production builds.
package careerfairui

import "embed"

// TemplateFS holds the HTML templates for production builds.
// In dev mode (IsDev=true), templates are loaded from disk for hot reloading.
//
//go:embed all:frontend/templates
var TemplateFS embed.FS
