package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"members-portal/internal/domain"
	"members-portal/internal/session"
	"members-portal/internal/usecase"
)

type Handler struct {
	uc       *usecase.AuthUsecase
	sessions *session.Manager
}

func NewHandler(uc *usecase.AuthUsecase, sessions *session.Manager) *Handler {
	return &Handler{uc: uc, sessions: sessions}
}

func (h *Handler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index", map[string]interface{}{"Title": "Welcome"})
}

func (h *Handler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", map[string]interface{}{"Title": "Log in"})
}

// Login is the authentication gate. Every failure mode, bad input, zero
// or several matching records, wrong password, ends in the same redirect
// so the response shape never reveals whether the username exists.
func (h *Handler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.uc.Login(c.Request().Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBadCredentials):
		case errors.Is(err, domain.ErrValidation):
			c.Logger().Infof("login rejected: %v", err)
		default:
			c.Logger().Errorf("login failed: %v", err)
		}
		return c.Redirect(http.StatusFound, "/login")
	}

	sess := CurrentSession(c)
	sess.Authenticate(user, h.sessions.TTL())
	if err := h.sessions.Save(c.Request().Context(), c.Response(), currentSessionID(c), sess); err != nil {
		c.Logger().Errorf("session save failed: %v", err)
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Redirect(http.StatusFound, "/members")
}

func (h *Handler) MembersPage(c echo.Context) error {
	return c.Render(http.StatusOK, "members", map[string]interface{}{
		"Title":    "Members",
		"Username": CurrentSession(c).Username,
	})
}

func (h *Handler) AdminPage(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("listing users failed: %v", err)
		return c.String(http.StatusInternalServerError, "Error loading users")
	}
	return c.Render(http.StatusOK, "admin", map[string]interface{}{
		"Title": "Admin",
		"Users": users,
	})
}

func (h *Handler) Promote(c echo.Context) error {
	username := c.Param("username")
	if err := h.uc.Promote(c.Request().Context(), username); err != nil {
		c.Logger().Errorf("promoting %s failed: %v", username, err)
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Error promoting user %s", username))
	}
	return c.String(http.StatusOK, fmt.Sprintf("User %s promoted to admin", username))
}

func (h *Handler) Demote(c echo.Context) error {
	username := c.Param("username")
	if err := h.uc.Demote(c.Request().Context(), username); err != nil {
		c.Logger().Errorf("demoting %s failed: %v", username, err)
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Error demoting user %s", username))
	}
	return c.String(http.StatusOK, fmt.Sprintf("User %s demoted to user", username))
}

// Logout destroys the session entry. A store error is logged and the
// client is still sent home; there is nothing useful it could do about it.
func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c.Request().Context(), c.Response(), currentSessionID(c)); err != nil {
		c.Logger().Errorf("session destroy failed: %v", err)
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup", map[string]interface{}{
		"Title":    "Sign up",
		"Missing":  c.QueryParam("missing") != "",
		"Existing": c.QueryParam("existing") != "",
	})
}

// SubmitUser registers a new account. Signing up does not log the caller
// in; the login form stays the only way to an authenticated session.
// Validation failures redirect to /login, not back to the signup form.
func (h *Handler) SubmitUser(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, err := h.uc.Signup(c.Request().Context(), username, email, password)
	switch {
	case err == nil:
		return c.Render(http.StatusOK, "submituser", map[string]interface{}{"Title": "Account created"})
	case errors.Is(err, usecase.ErrEmailTaken):
		return c.Redirect(http.StatusFound, "/signup?existing=true")
	case errors.Is(err, domain.ErrValidation):
		c.Logger().Infof("signup rejected: %v", err)
		return c.Redirect(http.StatusFound, "/login")
	default:
		c.Logger().Errorf("signup failed: %v", err)
		return c.String(http.StatusInternalServerError, "Error creating user")
	}
}

func (h *Handler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404", map[string]interface{}{"Title": "Not found"})
}
