package httpx

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	careerfairui "github.com/campuskit/careerfair-ui"
	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
	"github.com/campuskit/careerfair-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Events       *service.EventService
	CookieDomain string
	// TerminateOnMismatch clears the session when a signed-in user requests
	// the other role's area instead of just redirecting.
	TerminateOnMismatch bool
	IsDev               bool         // Development mode flag for template hot reloading
	Logger              *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router with area guards.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	ui := setupUIHandlers(services)

	guard := &AreaGuard{
		Auth:         services.Auth,
		Policy:       domainauth.Policy{TerminateOnMismatch: services.TerminateOnMismatch},
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if ui != nil {
		registerPublicRoutes(mux, ui, routeWrappers{guard: guard, csrf: csrf})
		registerAdminRoutes(mux, ui, routeWrappers{guard: guard, csrf: csrf})
		registerStudentRoutes(mux, ui, routeWrappers{guard: guard, csrf: csrf})
	}

	return mux
}

// routeWrappers bundles the middleware applied per route group.
type routeWrappers struct {
	guard *AreaGuard
	csrf  func(http.Handler) http.Handler
}

// public wraps a handler with CSRF protection and best-effort session loading.
func (rw routeWrappers) public(h http.HandlerFunc) http.Handler {
	return rw.csrf(rw.guard.WithSession(h))
}

// area wraps a handler with CSRF protection and the area guard.
func (rw routeWrappers) area(area domainauth.Area, h http.HandlerFunc) http.Handler {
	return rw.csrf(rw.guard.Require(area)(h))
}

// registerPublicRoutes wires the sign-in, registration, and status endpoints.
// They sit in the public area: reachable for everyone, session-aware when one
// exists so a signed-in visitor is bounced to their dashboard.
func registerPublicRoutes(mux *http.ServeMux, ui *UIHandlers, rw routeWrappers) {
	mux.Handle("GET /{$}", rw.public(ui.Index))
	mux.Handle("GET /auth/login", rw.public(ui.LoginPage))
	mux.Handle("POST /auth/login", rw.public(ui.Login))
	mux.Handle("GET /register", rw.public(ui.RegisterPage))
	mux.Handle("POST /register", rw.public(ui.Register))
	mux.Handle("POST /auth/logout", rw.public(ui.Logout))
	mux.Handle("GET /auth/signed-out", rw.public(ui.SignedOut))
	mux.Handle("GET /auth/status", rw.public(ui.Status))

	// Everything unmatched lands here for a rendered 404.
	mux.Handle("/", rw.guard.WithSession(http.HandlerFunc(ui.NotFound)))
}

// registerAdminRoutes wires the admin area behind the access policy.
func registerAdminRoutes(mux *http.ServeMux, ui *UIHandlers, rw routeWrappers) {
	admin := domainauth.AreaAdmin
	mux.Handle("GET /admin", rw.area(admin, ui.AdminDashboard))
	mux.Handle("GET /admin/events", rw.area(admin, ui.AdminEvents))
	mux.Handle("GET /admin/events/new", rw.area(admin, ui.EventNew))
	mux.Handle("POST /admin/events", rw.area(admin, ui.EventCreate))
}

// registerStudentRoutes wires the student area behind the access policy.
func registerStudentRoutes(mux *http.ServeMux, ui *UIHandlers, rw routeWrappers) {
	student := domainauth.AreaStudent
	mux.Handle("GET /student", rw.area(student, ui.StudentDashboard))
	mux.Handle("GET /student/events", rw.area(student, ui.StudentEvents))
	mux.Handle("POST /student/events/{id}/attend", rw.area(student, ui.EventAttend))
}

// setupUIHandlers creates UI handlers with the template renderer.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS("frontend/templates")
	} else {
		sub, err := fs.Sub(careerfairui.TemplateFS, "frontend/templates")
		if err != nil {
			log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
			sub = os.DirFS("frontend/templates")
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:            tr,
		AuthSvc:      services.Auth,
		EventSvc:     services.Events,
		CookieDomain: services.CookieDomain,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}
}
