package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"

	"github.com/campuskit/careerfair-ui/internal/domain/model"
	"github.com/campuskit/careerfair-ui/internal/ports"
	"github.com/campuskit/careerfair-ui/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// EventsService is a minimal interface for the events UI.
type EventsService interface {
	List(ctx context.Context, token string, opts model.EventListOptions) ([]model.Event, error)
	Create(ctx context.Context, token string, req model.CreateEventRequest) error
	Attend(ctx context.Context, token string, eventID int64) (string, error)
}

// AuthUIService covers the auth operations the browser handlers need.
type AuthUIService interface {
	Login(ctx context.Context, input service.LoginInput) (*service.LoginResult, error)
	Register(ctx context.Context, reg ports.Registration) error
	SessionResolver
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ EventsService = (*service.EventService)(nil)
	_ AuthUIService = (*service.AuthService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T            *TemplateRenderer
	AuthSvc      AuthUIService
	EventSvc     EventsService
	CookieDomain string
	IsDev        bool // Development mode flag for enhanced error reporting
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":           meta.Title,
		"PageTitle":       meta.PageTitle,
		"CurrentPage":     meta.CurrentPage,
		"IsAuthenticated": false,
		"Errors":          map[string]string{},
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		data["CSRFToken"] = csrfToken
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		identity := session.Identity()
		data["IsAuthenticated"] = true
		data["UserName"] = identity.FullName()
		data["UserEmail"] = identity.Email
		data["UserRole"] = string(identity.Role)
		data["IsAdmin"] = session.IsAdmin()
	}

	return data
}

// renderPage renders a page with HTMX partial support: full layout for
// regular navigations, just the content block for HTMX swaps.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderPage(w, page, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	// Include a <title> element so htmx updates document.title on partial swaps
	title, _ := data["Title"].(string)
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	if err := h.T.RenderContent(w, page, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div style="padding: 20px; background: #fee; border: 2px solid #c33; border-radius: 4px; margin: 20px; font-family: monospace;">
				<h2 style="color: #c33; margin-top: 0;">Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre style="background: #fff; padding: 10px; border: 1px solid #ccc; overflow-x: auto;">` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// sessionToken returns the upstream bearer credential for the current request.
// Guarded routes always have a session in context; the empty string only
// occurs when a handler is reached without the area guard.
func sessionToken(r *http.Request) string {
	if session := GetSessionFromContext(r.Context()); session != nil {
		return session.Token
	}
	return ""
}
