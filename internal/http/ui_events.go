package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/campuskit/careerfair-ui/internal/domain/model"
	"github.com/campuskit/careerfair-ui/internal/http/validation"
	"github.com/campuskit/careerfair-ui/internal/ports"
)

func adminEventsMeta() PageMeta {
	return PageMeta{Title: "Events - Career Fair", PageTitle: "Manage events", CurrentPage: PageAdminEvents}
}

func studentEventsMeta() PageMeta {
	return PageMeta{Title: "Events - Career Fair", PageTitle: "Browse events", CurrentPage: PageStudentEvents}
}

func eventFormMeta() PageMeta {
	return PageMeta{Title: "New event - Career Fair", PageTitle: "Create event", CurrentPage: PageEventForm}
}

// AdminEvents renders the admin events table with search, filter, and sort.
// GET /admin/events.
func (h *UIHandlers) AdminEvents(w http.ResponseWriter, r *http.Request) {
	h.eventsTable(w, r, eventsTableSpec{Page: PageAdminEvents, Meta: adminEventsMeta(), BasePath: "/admin/events"})
}

// StudentEvents renders the student events table.
// GET /student/events.
func (h *UIHandlers) StudentEvents(w http.ResponseWriter, r *http.Request) {
	h.eventsTable(w, r, eventsTableSpec{Page: PageStudentEvents, Meta: studentEventsMeta(), BasePath: "/student/events"})
}

// eventsTableSpec parameterizes the shared events listing for both areas.
type eventsTableSpec struct {
	Page     string
	Meta     PageMeta
	BasePath string
}

func (h *UIHandlers) eventsTable(w http.ResponseWriter, r *http.Request, spec eventsTableSpec) {
	opts := ParseEventListOptions(r.URL.Query())
	builder := NewTemplateData(r, spec.Meta).
		With("Query", opts.Q).
		With("Sort", opts.Sort).
		With("Dir", opts.Dir).
		With("BasePath", spec.BasePath).
		With("EventTypes", model.EventTypes()).
		With("TypeFilter", "")
	if opts.Type != nil {
		builder.With("TypeFilter", string(*opts.Type))
	}

	events, err := h.EventSvc.List(r.Context(), sessionToken(r), opts)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "event listing failed", "error", err)
		builder.WithError("Events are unavailable right now. Please try again.")
	} else {
		builder.With("Events", events)
	}

	// The table's search/sort controls target just the table element.
	if IsHTMX(r) && HXTarget(r) == "events-table" {
		SetHXPushURL(w, r.URL.RequestURI())
		if renderErr := h.T.RenderFragment(w, spec.Page, FragmentEventsTable, builder.Build()); renderErr != nil {
			h.logAndRenderTemplateError(w, r, renderErr, "events table fragment")
		}
		return
	}

	h.renderPage(w, r, spec.Page, builder.Build())
}

// EventNew renders the event creation form.
// GET /admin/events/new.
func (h *UIHandlers) EventNew(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, eventFormMeta()).
		With("EventTypes", model.EventTypes()).
		With("Form", model.CreateEventRequest{}).
		Build()
	h.renderPage(w, r, PageEventForm, data)
}

// EventCreate handles the event creation form submission.
// POST /admin/events.
func (h *UIHandlers) EventCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form, fieldErrs := parseEventForm(r)
	if len(fieldErrs) == 0 {
		err := h.EventSvc.Create(r.Context(), sessionToken(r), form)
		switch {
		case err == nil:
			if IsHTMX(r) {
				HTMX(w).Redirect("/admin/events")
				return
			}
			http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
			return
		default:
			var verr *ports.ValidationError
			if errors.As(err, &verr) {
				fieldErrs = verr.Fields
			} else {
				h.logger().ErrorContext(r.Context(), "event creation failed", "error", err)
				h.renderEventForm(w, r, form, nil, "The event could not be created. Please try again.")
				return
			}
		}
	}

	h.renderEventForm(w, r, form, fieldErrs, errMsgFixBelow)
}

func (h *UIHandlers) renderEventForm(
	w http.ResponseWriter,
	r *http.Request,
	form model.CreateEventRequest,
	fieldErrs map[string]string,
	msg string,
) {
	data := NewTemplateData(r, eventFormMeta()).
		With("EventTypes", model.EventTypes()).
		With("Form", form).
		WithFieldErrors(fieldErrs).
		WithError(msg).
		Build()
	h.renderPage(w, r, PageEventForm, data)
}

// parseEventForm reads and validates the event creation form.
func parseEventForm(r *http.Request) (model.CreateEventRequest, map[string]string) {
	typeOptions := make([]string, 0, len(model.EventTypes()))
	for _, t := range model.EventTypes() {
		typeOptions = append(typeOptions, string(t))
	}

	fv := validation.New().
		Validate("event_name", r.FormValue("event_name"), validation.Required("Event name", 120)).
		Validate("event_type", r.FormValue("event_type"), validation.OneOf("Event type", typeOptions)).
		Validate("event_date", r.FormValue("event_date"), validation.DateISO("Event date")).
		Validate("event_time", r.FormValue("event_time"), validation.TimeOfDay("Event time")).
		Validate("location", r.FormValue("location"), validation.Required("Location", 120)).
		Validate("description", r.FormValue("description"), validation.Optional("Description", 2000)).
		Validate("capacity", r.FormValue("capacity"), validation.IntRange("Capacity", 1, 100000))

	capacity, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("capacity")))
	eventType, _ := model.ParseEventType(r.FormValue("event_type"))

	form := model.CreateEventRequest{
		EventName:   strings.TrimSpace(r.FormValue("event_name")),
		EventType:   eventType,
		EventDate:   strings.TrimSpace(r.FormValue("event_date")),
		EventTime:   strings.TrimSpace(r.FormValue("event_time")),
		Location:    strings.TrimSpace(r.FormValue("location")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Capacity:    capacity,
	}
	return form, fv.Errors()
}

// EventAttend signs the student up for an event. HTMX requests get a toast
// and a refreshed table; plain form posts bounce back to the listing.
// POST /student/events/{id}/attend.
func (h *UIHandlers) EventAttend(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || eventID <= 0 {
		h.NotFound(w, r)
		return
	}

	message, err := h.EventSvc.Attend(r.Context(), sessionToken(r), eventID)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "event signup failed", "error", err, "event_id", eventID)
		h.attendResponse(w, r, "The signup did not go through. Please try again.", "error")
		return
	}
	if message == "" {
		message = "You are signed up."
	}
	h.attendResponse(w, r, message, "success")
}

func (h *UIHandlers) attendResponse(w http.ResponseWriter, r *http.Request, message, kind string) {
	if !IsHTMX(r) {
		http.Redirect(w, r, "/student/events", http.StatusSeeOther)
		return
	}

	triggerToast(w, message, kind)

	// Refresh the table so capacity counts and button states are current.
	opts := ParseEventListOptions(r.URL.Query())
	builder := NewTemplateData(r, studentEventsMeta()).
		With("Query", opts.Q).
		With("Sort", opts.Sort).
		With("Dir", opts.Dir).
		With("BasePath", "/student/events").
		With("EventTypes", model.EventTypes()).
		With("TypeFilter", "")
	if opts.Type != nil {
		builder.With("TypeFilter", string(*opts.Type))
	}
	events, err := h.EventSvc.List(r.Context(), sessionToken(r), opts)
	if err != nil {
		builder.WithError("Events are unavailable right now. Please try again.")
	} else {
		builder.With("Events", events)
	}

	if renderErr := h.T.RenderFragment(w, PageStudentEvents, FragmentEventsTable, builder.Build()); renderErr != nil {
		h.logAndRenderTemplateError(w, r, renderErr, "events table fragment")
	}
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}
