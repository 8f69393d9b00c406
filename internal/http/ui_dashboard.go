package httpx

import (
	"net/http"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
	"github.com/campuskit/careerfair-ui/internal/domain/model"
)

// Index routes the bare domain to wherever the visitor belongs: their role's
// dashboard when signed in, the sign-in screen otherwise.
// GET /.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		http.Redirect(w, r, AreaPath(domainauth.HomeArea(session.Role)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// AdminDashboard renders the admin landing page with event totals.
// GET /admin.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	builder := NewTemplateData(r, PageMeta{
		Title:       "Admin - Career Fair",
		PageTitle:   "Admin dashboard",
		CurrentPage: PageAdminDashboard,
	}).With("TotalEvents", 0).With("FullEvents", 0)

	events, err := h.EventSvc.List(r.Context(), sessionToken(r), model.EventListOptions{})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "dashboard event fetch failed", "error", err)
		builder.WithError("Event data is unavailable right now.")
	} else {
		full := 0
		for _, e := range events {
			if e.Full() {
				full++
			}
		}
		builder.With("TotalEvents", len(events)).With("FullEvents", full)
	}

	h.renderPage(w, r, PageAdminDashboard, builder.Build())
}

// StudentDashboard renders the student landing page.
// GET /student.
func (h *UIHandlers) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	builder := NewTemplateData(r, PageMeta{
		Title:       "Home - Career Fair",
		PageTitle:   "Student dashboard",
		CurrentPage: PageStudentDashboard,
	}).With("TotalEvents", 0).With("OpenEvents", 0)

	events, err := h.EventSvc.List(r.Context(), sessionToken(r), model.EventListOptions{})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "dashboard event fetch failed", "error", err)
		builder.WithError("Event data is unavailable right now.")
	} else {
		open := 0
		for _, e := range events {
			if e.Attendable() {
				open++
			}
		}
		builder.With("TotalEvents", len(events)).With("OpenEvents", open)
	}

	h.renderPage(w, r, PageStudentDashboard, builder.Build())
}
