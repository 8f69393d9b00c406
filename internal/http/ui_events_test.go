package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/careerfair-ui/internal/domain/model"
	"github.com/campuskit/careerfair-ui/internal/ports"
)

func tableFixtures() []model.Event {
	return []model.Event{
		{
			EventID:      1,
			EventName:    "Spring Career Fair",
			EventType:    model.EventTypeCareerFair,
			EventDate:    "2026-03-10",
			EventTime:    "10:00",
			Location:     "Main Atrium",
			Capacity:     200,
			NumAttendees: 180,
		},
		{
			EventID:      2,
			EventName:    "Resume Workshop",
			EventType:    model.EventTypePresentation,
			EventDate:    "2026-02-01",
			EventTime:    "14:00",
			Location:     "Room 204",
			Capacity:     30,
			NumAttendees: 30,
		},
	}
}

func TestAdminEventsRendersFullPage(t *testing.T) {
	events := &stubEventsService{
		listFn: func(_ context.Context, token string, _ model.EventListOptions) ([]model.Event, error) {
			assert.Equal(t, "token-admin", token)
			return tableFixtures(), nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/events", nil), adminSession())
	h.AdminEvents(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Spring Career Fair")
	assert.Contains(t, body, "Resume Workshop")
	assert.Contains(t, body, `href="/admin/events/new"`)
	// The admin listing has no attend column.
	assert.NotContains(t, body, "/attend")
}

func TestAdminEventsForwardsFilters(t *testing.T) {
	var got model.EventListOptions
	events := &stubEventsService{
		listFn: func(_ context.Context, _ string, opts model.EventListOptions) ([]model.Event, error) {
			got = opts
			return nil, nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	target := "/admin/events?q=fair&type=CAREER_FAIR&sort=name&dir=desc"
	req := withSession(httptest.NewRequest(http.MethodGet, target, nil), adminSession())
	h.AdminEvents(rec, req)

	assert.Equal(t, "fair", got.Q)
	require.NotNil(t, got.Type)
	assert.Equal(t, model.EventTypeCareerFair, *got.Type)
	assert.Equal(t, "name", got.Sort)
	assert.Equal(t, "desc", got.Dir)
}

func TestEventsTableFragmentForHTMXSearch(t *testing.T) {
	events := &stubEventsService{
		listFn: func(context.Context, string, model.EventListOptions) ([]model.Event, error) {
			return tableFixtures(), nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodGet, "/student/events?q=fair", nil), studentSession())
	req.Header.Set("Hx-Request", "true")
	req.Header.Set("Hx-Target", "events-table")
	h.StudentEvents(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/student/events?q=fair", rec.Header().Get("Hx-Push-Url"))

	body := strings.TrimSpace(rec.Body.String())
	assert.True(t, strings.HasPrefix(body, `<div id="events-table">`), "fragment should start with the table container")
	assert.NotContains(t, body, "<!DOCTYPE html>")
}

func TestStudentEventsShowsAttendability(t *testing.T) {
	events := &stubEventsService{
		listFn: func(context.Context, string, model.EventListOptions) ([]model.Event, error) {
			return tableFixtures(), nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodGet, "/student/events", nil), studentSession())
	h.StudentEvents(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "/student/events/1/attend")
	// Resume Workshop is at capacity.
	assert.Contains(t, body, "Full")
	assert.NotContains(t, body, "/student/events/2/attend")
}

func TestEventsUpstreamFailureShowsBanner(t *testing.T) {
	events := &stubEventsService{
		listFn: func(context.Context, string, model.EventListOptions) ([]model.Event, error) {
			return nil, assert.AnError
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/events", nil), adminSession())
	h.AdminEvents(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Events are unavailable right now.")
}

func TestEventNewRendersForm(t *testing.T) {
	h := newTestHandlers(t, newStubAuthService(), &stubEventsService{})

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/events/new", nil), adminSession())
	h.EventNew(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="event_name"`)
	assert.Contains(t, body, `value="CAREER_FAIR"`)
	assert.Contains(t, body, "Career Fair")
}

func TestEventCreateSuccess(t *testing.T) {
	var got model.CreateEventRequest
	events := &stubEventsService{
		createFn: func(_ context.Context, token string, req model.CreateEventRequest) error {
			assert.Equal(t, "token-admin", token)
			got = req
			return nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	form := url.Values{
		"event_name":  {"Fall Career Fair"},
		"event_type":  {"CAREER_FAIR"},
		"event_date":  {"2026-10-05"},
		"event_time":  {"09:30"},
		"location":    {"Field House"},
		"description": {"All majors welcome."},
		"capacity":    {"500"},
	}
	req := withSession(postForm("/admin/events", form), adminSession())
	h.EventCreate(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/events", rec.Header().Get("Location"))
	assert.Equal(t, model.CreateEventRequest{
		EventName:   "Fall Career Fair",
		EventType:   model.EventTypeCareerFair,
		EventDate:   "2026-10-05",
		EventTime:   "09:30",
		Location:    "Field House",
		Description: "All majors welcome.",
		Capacity:    500,
	}, got)
}

func TestEventCreateValidationErrors(t *testing.T) {
	events := &stubEventsService{
		createFn: func(context.Context, string, model.CreateEventRequest) error {
			t.Fatal("invalid form must not reach the upstream API")
			return nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	form := url.Values{
		"event_name": {"Fall Career Fair"},
		"event_type": {"KARAOKE"},
		"event_date": {"10/05/2026"},
		"event_time": {"09:30"},
		"location":   {"Field House"},
		"capacity":   {"0"},
	}
	req := withSession(postForm("/admin/events", form), adminSession())
	h.EventCreate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Event date must be a date in YYYY-MM-DD format.")
	assert.Contains(t, body, "Capacity must be between 1 and 100000.")
	// Submitted values survive the re-render.
	assert.Contains(t, body, `value="Fall Career Fair"`)
}

func TestEventCreateMergesUpstreamFieldErrors(t *testing.T) {
	events := &stubEventsService{
		createFn: func(context.Context, string, model.CreateEventRequest) error {
			return &ports.ValidationError{Fields: map[string]string{"event_name": "An event with that name already exists."}}
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	form := url.Values{
		"event_name": {"Fall Career Fair"},
		"event_type": {"CAREER_FAIR"},
		"event_date": {"2026-10-05"},
		"event_time": {"09:30"},
		"location":   {"Field House"},
		"capacity":   {"500"},
	}
	req := withSession(postForm("/admin/events", form), adminSession())
	h.EventCreate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "An event with that name already exists.")
}

func TestEventAttendPlainFormRedirects(t *testing.T) {
	attended := int64(0)
	events := &stubEventsService{
		attendFn: func(_ context.Context, token string, eventID int64) (string, error) {
			assert.Equal(t, "token-student", token)
			attended = eventID
			return "See you there!", nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	req := withSession(postForm("/student/events/1/attend", url.Values{}), studentSession())
	req.SetPathValue("id", "1")
	h.EventAttend(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/student/events", rec.Header().Get("Location"))
	assert.Equal(t, int64(1), attended)
}

func TestEventAttendHTMXTriggersToastAndRefreshesTable(t *testing.T) {
	events := &stubEventsService{
		attendFn: func(context.Context, string, int64) (string, error) {
			return "See you there!", nil
		},
		listFn: func(context.Context, string, model.EventListOptions) ([]model.Event, error) {
			return tableFixtures(), nil
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	req := withSession(postForm("/student/events/1/attend", url.Values{}), studentSession())
	req.Header.Set("Hx-Request", "true")
	req.SetPathValue("id", "1")
	h.EventAttend(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "See you there!")
	assert.Contains(t, rec.Body.String(), `<div id="events-table">`)
}

func TestEventAttendFailureShowsErrorToast(t *testing.T) {
	events := &stubEventsService{
		attendFn: func(context.Context, string, int64) (string, error) {
			return "", assert.AnError
		},
	}
	h := newTestHandlers(t, newStubAuthService(), events)

	rec := httptest.NewRecorder()
	req := withSession(postForm("/student/events/1/attend", url.Values{}), studentSession())
	req.Header.Set("Hx-Request", "true")
	req.SetPathValue("id", "1")
	h.EventAttend(rec, req)

	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "error")
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "did not go through")
}

func TestEventAttendRejectsBadID(t *testing.T) {
	h := newTestHandlers(t, newStubAuthService(), &stubEventsService{})

	rec := httptest.NewRecorder()
	req := withSession(postForm("/student/events/abc/attend", url.Values{}), studentSession())
	req.SetPathValue("id", "abc")
	h.EventAttend(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
