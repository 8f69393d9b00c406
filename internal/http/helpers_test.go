package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
	"github.com/campuskit/careerfair-ui/internal/domain/model"
	"github.com/campuskit/careerfair-ui/internal/ports"
	"github.com/campuskit/careerfair-ui/internal/service"
)

// newTestRenderer parses the real templates shipped with the binary so handler
// tests exercise the actual page sets.
func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS("../../frontend/templates"),
	})
	require.NoError(t, err)
	return tr
}

// stubAuthService implements AuthUIService with function fields and an
// in-memory session map.
type stubAuthService struct {
	loginFn    func(ctx context.Context, input service.LoginInput) (*service.LoginResult, error)
	registerFn func(ctx context.Context, reg ports.Registration) error

	sessions  map[string]*domainauth.Session
	loggedOut []string
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{sessions: make(map[string]*domainauth.Session)}
}

func (s *stubAuthService) Login(ctx context.Context, input service.LoginInput) (*service.LoginResult, error) {
	if s.loginFn == nil {
		return nil, errors.New("login not configured")
	}
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) Register(ctx context.Context, reg ports.Registration) error {
	if s.registerFn == nil {
		return errors.New("register not configured")
	}
	return s.registerFn(ctx, reg)
}

func (s *stubAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return nil, errors.New("session not found")
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	delete(s.sessions, sessionID)
	return nil
}

// stubEventsService implements EventsService with function fields.
type stubEventsService struct {
	listFn   func(ctx context.Context, token string, opts model.EventListOptions) ([]model.Event, error)
	createFn func(ctx context.Context, token string, req model.CreateEventRequest) error
	attendFn func(ctx context.Context, token string, eventID int64) (string, error)
}

func (s *stubEventsService) List(ctx context.Context, token string, opts model.EventListOptions) ([]model.Event, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, token, opts)
}

func (s *stubEventsService) Create(ctx context.Context, token string, req model.CreateEventRequest) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, token, req)
}

func (s *stubEventsService) Attend(ctx context.Context, token string, eventID int64) (string, error) {
	if s.attendFn == nil {
		return "", nil
	}
	return s.attendFn(ctx, token, eventID)
}

func adminSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-admin",
		Token:     "token-admin",
		UserID:    1,
		FirstName: "Ada",
		LastName:  "Adminson",
		Email:     "ada@example.edu",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func studentSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-student",
		Token:     "token-student",
		UserID:    2,
		FirstName: "Sam",
		LastName:  "Student",
		Email:     "sam@example.edu",
		Role:      domainauth.RoleStudent,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newTestHandlers(t *testing.T, auth *stubAuthService, events *stubEventsService) *UIHandlers {
	t.Helper()
	return &UIHandlers{
		T:        newTestRenderer(t),
		AuthSvc:  auth,
		EventSvc: events,
	}
}

// withSession attaches a session to the request context the way the area guard
// does for allowed requests.
func withSession(r *http.Request, session *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), session))
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
