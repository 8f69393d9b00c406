package httpx

import (
	"errors"
	"net/http"
	"strings"
)

// NotFound handles 404s with content negotiation: HTML for browsers, JSON
// for programmatic callers.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	wantsHTML := accept == "" || strings.Contains(accept, "text/html") || IsHTMX(r)
	if wantsHTML {
		h.renderBrowserNotFound(w, r)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("not found"),
	})
}

func (h *UIHandlers) renderBrowserNotFound(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	data := map[string]any{
		"Title":           "Page not found - Career Fair",
		"Code":            "404",
		"Message":         "The page you're looking for doesn't exist.",
		"IsAuthenticated": session != nil,
		"ShowLogin":       session == nil,
		"RedirectURI":     safeRedirectPath(r.URL.RequestURI()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if h.T == nil || h.T.RenderError(w, data) != nil {
		// Fallback to plain text if template rendering fails
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}
