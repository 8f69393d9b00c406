package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
const SessionCookieName = "session_id"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionResolver restores a session by id and terminates one on demand.
// Implemented by service.AuthService.
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AreaGuard gates access to the UI's areas using the access policy. Every
// guarded route resolves the session once, asks the policy for a decision,
// and either passes the session down the chain or answers with a redirect.
type AreaGuard struct {
	Auth         SessionResolver
	Policy       domainauth.Policy
	CookieDomain string
	Logger       *slog.Logger
}

func (g *AreaGuard) logger() *slog.Logger {
	if g != nil && g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// Require returns a middleware enforcing the policy for the given area.
// Denied requests are always resolved as redirects, never as error pages.
func (g *AreaGuard) Require(area domainauth.Area) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := g.resolveSession(r)

			var identity *domainauth.Identity
			if session != nil {
				id := session.Identity()
				identity = &id
			}

			decision := g.Policy.Decide(identity, area)
			if decision.Allow {
				ctx := SetSessionInContext(r.Context(), session)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if decision.ClearSession {
				g.terminate(w, r, session)
			}
			redirectToArea(w, r, decision.RedirectTo)
		})
	}
}

// WithSession returns a middleware that attaches the session when present but
// never blocks. Public pages use it to render role-aware navigation.
func (g *AreaGuard) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session := g.resolveSession(r); session != nil {
			r = r.WithContext(SetSessionInContext(r.Context(), session))
		}
		next.ServeHTTP(w, r)
	})
}

// resolveSession restores the session referenced by the cookie, or nil.
func (g *AreaGuard) resolveSession(r *http.Request) *domainauth.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	session, err := g.Auth.GetSession(r.Context(), cookie.Value)
	if err != nil {
		// An unusable record reads as anonymous; the service already
		// removed it from the store where appropriate.
		return nil
	}
	return session
}

// terminate removes the session record and expires the browser cookie.
func (g *AreaGuard) terminate(w http.ResponseWriter, r *http.Request, session *domainauth.Session) {
	if session != nil {
		if err := g.Auth.Logout(r.Context(), session.ID); err != nil {
			g.logger().WarnContext(r.Context(), "session termination failed", "error", err)
		}
	}
	clearSessionCookie(w, r, g.CookieDomain)
}

// AreaPath maps an area to the path its landing page is served from.
func AreaPath(area domainauth.Area) string {
	switch area {
	case domainauth.AreaAdmin:
		return "/admin"
	case domainauth.AreaStudent:
		return "/student"
	default:
		return "/auth/login"
	}
}

// redirectToArea sends the browser to an area's landing page. HTMX requests
// get an Hx-Redirect so the client performs a full navigation instead of
// swapping a fragment of the wrong page.
func redirectToArea(w http.ResponseWriter, r *http.Request, area domainauth.Area) {
	target := AreaPath(area)
	if area == domainauth.AreaPublic {
		if redirect := safeRedirectPath(r.URL.RequestURI()); redirect != "/" {
			target += "?redirect_uri=" + url.QueryEscape(redirect)
		}
	}

	if IsHTMX(r) {
		SetHXRedirect(w, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// clearSessionCookie expires the session cookie on the client. It mirrors the
// attributes used when setting the cookie so deletion works across browsers.
func clearSessionCookie(w http.ResponseWriter, r *http.Request, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isRequestSecure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// isRequestSecure checks whether the request arrived over HTTPS, accounting
// for proxies via X-Forwarded-Proto (possibly comma-separated).
func isRequestSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
