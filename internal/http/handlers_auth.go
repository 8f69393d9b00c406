package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
	"github.com/campuskit/careerfair-ui/internal/http/validation"
	"github.com/campuskit/careerfair-ui/internal/ports"
	"github.com/campuskit/careerfair-ui/internal/service"
)

func loginMeta() PageMeta {
	return PageMeta{Title: "Sign in - Career Fair", PageTitle: "Sign in", CurrentPage: PageLogin}
}

func registerMeta() PageMeta {
	return PageMeta{Title: "Create account - Career Fair", PageTitle: "Create account", CurrentPage: PageRegister}
}

// LoginPage renders the sign-in form.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	// A signed-in user has no business on the login screen; send them home.
	if session := GetSessionFromContext(r.Context()); session != nil {
		http.Redirect(w, r, AreaPath(domainauth.HomeArea(session.Role)), http.StatusSeeOther)
		return
	}

	builder := NewTemplateData(r, loginMeta()).
		With("Email", "").
		With("RedirectURI", safeRedirectPath(r.URL.Query().Get("redirect_uri")))
	if r.URL.Query().Get("registered") == "1" {
		builder.WithFlash("Account created. Sign in to continue.")
	}
	h.renderPage(w, r, PageLogin, builder.Build())
}

// Login handles the sign-in form submission.
// POST /auth/login.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	redirectURI := safeRedirectPath(r.FormValue("redirect_uri"))

	fieldErrs := validation.New().
		Validate("email", email, validation.Required("Email", 254), validation.Email("Email")).
		Validate("password", password, validation.Required("Password", 128)).
		Errors()
	if len(fieldErrs) > 0 {
		h.renderLoginForm(w, r, loginFormState{Email: email, RedirectURI: redirectURI, FieldErrors: fieldErrs})
		return
	}

	result, err := h.AuthSvc.Login(r.Context(), service.LoginInput{Email: email, Password: password})
	if err != nil {
		msg := "Sign-in is unavailable right now. Please try again."
		if errors.Is(err, ports.ErrInvalidCredentials) {
			msg = "Invalid email or password."
		} else {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		}
		h.renderLoginForm(w, r, loginFormState{Email: email, RedirectURI: redirectURI, Error: msg})
		return
	}

	h.setSessionCookie(w, r, result.Session)

	// The decoded role steers where the browser lands after sign-in.
	target := redirectURI
	if target == "/" || target == "" {
		target = AreaPath(domainauth.HomeArea(result.Session.Role))
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// loginFormState carries re-render state for a failed sign-in attempt.
type loginFormState struct {
	Email       string
	RedirectURI string
	Error       string
	FieldErrors map[string]string
}

func (h *UIHandlers) renderLoginForm(w http.ResponseWriter, r *http.Request, state loginFormState) {
	builder := NewTemplateData(r, loginMeta()).
		With("Email", state.Email).
		With("RedirectURI", state.RedirectURI).
		WithFieldErrors(state.FieldErrors)
	if state.Error != "" {
		builder.WithError(state.Error)
	} else if len(state.FieldErrors) > 0 {
		builder.WithError(errMsgFixBelow)
	}
	h.renderPage(w, r, PageLogin, builder.Build())
}

// RegisterPage renders the student registration form.
// GET /register.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, registerMeta()).
		With("FirstName", "").
		With("LastName", "").
		With("Email", "").
		Build()
	h.renderPage(w, r, PageRegister, data)
}

// Register handles the registration form submission. New accounts are always
// students; the upstream API owns that rule, this handler just relays.
// POST /register.
func (h *UIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	reg := ports.Registration{
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
	}

	fieldErrs := validation.New().
		Validate("first_name", reg.FirstName, validation.Required("First name", 64)).
		Validate("last_name", reg.LastName, validation.Required("Last name", 64)).
		Validate("email", reg.Email, validation.Required("Email", 254), validation.Email("Email")).
		Validate("password", reg.Password, validation.RequiredRange("Password", 8, 128)).
		Errors()

	if len(fieldErrs) == 0 {
		err := h.AuthSvc.Register(r.Context(), reg)
		switch {
		case err == nil:
			target := "/auth/login?registered=1"
			if IsHTMX(r) {
				HTMX(w).Redirect(target)
				return
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		default:
			var verr *ports.ValidationError
			if errors.As(err, &verr) {
				fieldErrs = verr.Fields
			} else {
				h.logger().ErrorContext(r.Context(), "registration failed", "error", err)
				h.renderRegisterForm(w, r, reg, nil, "Registration is unavailable right now. Please try again.")
				return
			}
		}
	}

	h.renderRegisterForm(w, r, reg, fieldErrs, errMsgFixBelow)
}

func (h *UIHandlers) renderRegisterForm(
	w http.ResponseWriter,
	r *http.Request,
	reg ports.Registration,
	fieldErrs map[string]string,
	msg string,
) {
	data := NewTemplateData(r, registerMeta()).
		With("FirstName", reg.FirstName).
		With("LastName", reg.LastName).
		With("Email", reg.Email).
		WithFieldErrors(fieldErrs).
		WithError(msg).
		Build()
	h.renderPage(w, r, PageRegister, data)
}

// Logout terminates the session and clears the browser cookie. Logging out
// twice is harmless: the second call finds no cookie or an absent record and
// lands on the same signed-out page.
// POST /auth/logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.AuthSvc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}
	clearSessionCookie(w, r, h.CookieDomain)

	target := "/auth/signed-out"
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *UIHandlers) Status(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.AuthSvc.GetSession(r.Context(), cookie.Value)
	if err != nil {
		// Session is invalid or expired, clear the cookie
		clearSessionCookie(w, r, h.CookieDomain)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":         session.UserID,
			"first_name": session.FirstName,
			"last_name":  session.LastName,
			"email":      session.Email,
			"role":       session.Role,
		},
		"expires_at": session.ExpiresAt,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *UIHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isRequestSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// SignedOut renders a simple signed-out page with a sign-in button.
// GET /auth/signed-out.
func (h *UIHandlers) SignedOut(w http.ResponseWriter, r *http.Request) {
	redirect := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	data := NewTemplateData(r, PageMeta{
		Title:       "Signed out - Career Fair",
		PageTitle:   "Signed out",
		CurrentPage: PageSignedOut,
	}).With("RedirectURI", redirect).Build()

	if err := h.T.RenderPage(w, PageSignedOut, data); err != nil {
		http.Redirect(w, r, "/auth/login?redirect_uri="+url.QueryEscape(redirect), http.StatusSeeOther)
	}
}
