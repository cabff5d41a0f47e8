package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authpage/internal/authform"
	"github.com/nfrund/authpage/internal/events"
	"github.com/nfrund/authpage/internal/formstore"
	"github.com/nfrund/authpage/internal/middleware"
	"github.com/nfrund/authpage/internal/pubsub"
	"github.com/nfrund/authpage/internal/view"
	"github.com/nfrund/authpage/web/src/templates/layouts"
	"github.com/nfrund/authpage/web/src/templates/pages"
)

const (
	// PathAuth is where the form lives; every action redirects back here.
	PathAuth = "/auth"

	formSessionName = "form-session"
	formIDKey       = "form_id"
	pageTitle       = "Sign in"
)

// AuthHandler serves the auth form. Each browser session owns one form in
// the store, identified by an ID kept in the form-session cookie.
type AuthHandler struct {
	forms  *formstore.Store
	events pubsub.Publisher
}

// NewAuthHandler creates a new AuthHandler. events may be nil.
func NewAuthHandler(forms *formstore.Store, events pubsub.Publisher) *AuthHandler {
	return &AuthHandler{forms: forms, events: events}
}

// loadForm returns the form bound to the request's session, mounting a fresh
// one when the session has none or its form has expired. The request logger
// is tagged with the form ID from here on.
func (h *AuthHandler) loadForm(c echo.Context) (uuid.UUID, authform.FormState, error) {
	sess, err := session.Get(formSessionName, c)
	if sess == nil {
		return uuid.Nil, authform.FormState{}, fmt.Errorf("get form session: %w", err)
	}
	// A cookie that fails to decode yields a fresh session and an error;
	// treat it like a first visit.

	if raw, ok := sess.Values[formIDKey].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			if state, ok := h.forms.Get(id); ok {
				c.SetRequest(c.Request().WithContext(middleware.WithForm(c.Request().Context(), id)))
				return id, state, nil
			}
		}
	}

	id, state := h.forms.Create()
	sess.Values[formIDKey] = id.String()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		h.forms.Delete(id)
		return uuid.Nil, authform.FormState{}, fmt.Errorf("save form session: %w", err)
	}
	c.SetRequest(c.Request().WithContext(middleware.WithForm(c.Request().Context(), id)))
	middleware.FromContext(c.Request().Context()).Debug("Mounted form")
	return id, state, nil
}

// update applies fn to the session's form as one step, so concurrent
// requests of the same session cannot overwrite each other's changes.
func (h *AuthHandler) update(c echo.Context, fn func(authform.FormState) authform.FormState) (uuid.UUID, error) {
	id, _, err := h.loadForm(c)
	if err != nil {
		return uuid.Nil, err
	}
	if _, ok := h.forms.Update(id, fn); !ok {
		// Swept between mount and update: start over from a fresh form.
		h.forms.Put(id, fn(authform.New()))
	}
	return id, nil
}

// AuthGet renders the form (GET /auth) along with any pending notice.
func (h *AuthHandler) AuthGet(c echo.Context) error {
	_, state, err := h.loadForm(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load form").SetInternal(err)
	}

	flashes := view.GetFlashData(c)
	page := layouts.Base(pageTitle, flashes, pages.Auth(authform.Project(state)))
	return c.Render(http.StatusOK, "", view.AdaptGomponentToTempl(page))
}

// FieldPost records a single input change (POST /auth/field).
func (h *AuthHandler) FieldPost(c echo.Context) error {
	var req FieldUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown field")
	}

	field, value := req.Target(), c.FormValue(req.Field)
	_, err := h.update(c, func(s authform.FormState) authform.FormState {
		return authform.UpdateField(s, field, value)
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load form").SetInternal(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ModePost toggles between login and sign-up (POST /auth/mode).
func (h *AuthHandler) ModePost(c echo.Context) error {
	return h.transition(c, authform.SwitchMode)
}

// GooglePost starts the mock Google login (POST /auth/google).
func (h *AuthHandler) GooglePost(c echo.Context) error {
	return h.transition(c, authform.EnterGoogleMode)
}

// GoogleBackPost leaves the mock Google login (POST /auth/google/back).
func (h *AuthHandler) GoogleBackPost(c echo.Context) error {
	return h.transition(c, authform.ExitGoogleMode)
}

func (h *AuthHandler) transition(c echo.Context, next func(authform.FormState) authform.FormState) error {
	if _, err := h.update(c, next); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load form").SetInternal(err)
	}
	return c.Redirect(http.StatusSeeOther, PathAuth)
}

// SubmitPost applies the posted values and submits the form
// (POST /auth/submit). The result is shown as a flash notice after the
// redirect.
func (h *AuthHandler) SubmitPost(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	var (
		submitted authform.FormState
		out       authform.Outcome
		rejection error
	)
	id, err := h.update(c, func(s authform.FormState) authform.FormState {
		// Disabled inputs are not posted, so absent fields keep their stored value.
		for _, f := range authform.AllFields() {
			if vals, ok := params[string(f)]; ok && len(vals) > 0 && vals[0] != s.Value(f) {
				s = authform.UpdateField(s, f, vals[0])
			}
		}
		submitted = s
		next, o, err := authform.Submit(s)
		out, rejection = o, err
		return next
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load form").SetInternal(err)
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	h.publish(ctx, id, submitted, out, rejection)

	if rejection != nil {
		logger.Info("Submission rejected", "mode", submitted.Mode, "error", rejection)
		if ferr := view.SetFlashError(c, rejection.Error()); ferr != nil {
			logger.Error("Failed to save flash", "error", ferr)
		}
	} else {
		logger.Info("Submission accepted", "outcome", out.Kind)
		if ferr := view.SetFlashSuccess(c, out.Message); ferr != nil {
			logger.Error("Failed to save flash", "error", ferr)
		}
	}
	return c.Redirect(http.StatusSeeOther, PathAuth)
}

func (h *AuthHandler) publish(ctx context.Context, id uuid.UUID, state authform.FormState, out authform.Outcome, err error) {
	if h.events == nil {
		return
	}
	ev := events.NewSubmission(id.String(), state, out, err)
	if perr := events.Publish(ctx, h.events, ev); perr != nil {
		middleware.FromContext(ctx).Warn("Failed to publish submission event", "error", perr)
	}
}
