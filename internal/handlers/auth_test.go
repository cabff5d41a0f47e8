package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authpage/internal/authform"
	"github.com/nfrund/authpage/internal/formstore"
	"github.com/nfrund/authpage/internal/handlers"
	"github.com/nfrund/authpage/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupAuthTest(t *testing.T) (*echo.Echo, *formstore.Store) {
	t.Helper()
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	forms := formstore.New()
	h := handlers.NewAuthHandler(forms, nil)
	e.GET("/auth", h.AuthGet)
	e.POST("/auth/field", h.FieldPost)
	e.POST("/auth/mode", h.ModePost)
	e.POST("/auth/google", h.GooglePost)
	e.POST("/auth/google/back", h.GoogleBackPost)
	e.POST("/auth/submit", h.SubmitPost)
	return e, forms
}

// browser replays the cookies the server sets, like a real client would.
type browser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, e *echo.Echo) *browser {
	return &browser{t: t, e: e, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get() string {
	b.t.Helper()
	rec := b.do(http.MethodGet, "/auth", nil)
	require.Equal(b.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func (b *browser) post(path string, form url.Values) {
	b.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	rec := b.do(http.MethodPost, path, form)
	require.Equal(b.t, http.StatusSeeOther, rec.Code)
	assert.Equal(b.t, "/auth", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthGet_MountsOneFormPerSession(t *testing.T) {
	e, forms := setupAuthTest(t)
	b := newBrowser(t, e)

	body := b.get()
	assert.Contains(t, body, "Welcome Back")
	b.get()
	assert.Equal(t, 1, forms.Len())

	newBrowser(t, e).get()
	assert.Equal(t, 2, forms.Len())
}

func TestSubmitPost_Login(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()

	b.post("/auth/submit", url.Values{"username": {"bob"}, "email": {"bob@x.com"}, "password": {""}})
	body := b.get()
	assert.Contains(t, body, "Please fill in all fields")
	assert.Contains(t, body, `value="bob@x.com"`, "rejected input stays in the form")

	b.post("/auth/submit", url.Values{"username": {"bob"}, "email": {"bob@x.com"}, "password": {"pw"}})
	body = b.get()
	assert.Contains(t, body, "Login successful")
	assert.NotContains(t, body, `value="bob@x.com"`)

	body = b.get()
	assert.NotContains(t, body, "Login successful", "notices are shown once")
}

func TestSubmitPost_SignUp(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()
	b.post("/auth/mode", nil)

	creds := url.Values{
		"username":        {"bob"},
		"email":           {"bob@x.com"},
		"password":        {"Abcdef1!"},
		"confirmPassword": {"Abcdef1@"},
	}
	b.post("/auth/submit", creds)
	assert.Contains(t, b.get(), "Passwords do not match")

	creds.Set("confirmPassword", "Abcdef1!")
	b.post("/auth/submit", creds)
	body := b.get()
	assert.Contains(t, body, "Sign Up successful")
	assert.Contains(t, body, "Create Account", "mode survives a successful submit")
}

func TestSubmitPost_Google(t *testing.T) {
	e, forms := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()
	b.post("/auth/google", nil)

	body := b.get()
	assert.Contains(t, body, `value="user@gmail.com"`)
	assert.Contains(t, body, `id="back-btn"`)

	// Disabled inputs are not posted; the stored pre-fill is used.
	b.post("/auth/submit", url.Values{})
	body = b.get()
	assert.Contains(t, body, "Google Login successful")
	assert.Contains(t, body, "Welcome Back")

	b.post("/auth/google", nil)
	b.post("/auth/submit", url.Values{"email": {""}})
	assert.Contains(t, b.get(), "Google email is required")
	assert.Equal(t, 1, forms.Len())
}

func TestGoogleBackPost_ClearsFields(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()
	b.post("/auth/google", nil)
	b.post("/auth/google/back", nil)

	body := b.get()
	assert.NotContains(t, body, "GoogleUser")
	assert.Contains(t, body, `id="google-btn"`)
}

func TestFieldPost(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()

	rec := b.do(http.MethodPost, "/auth/field", url.Values{"field": {"username"}, "username": {"alice"}})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, b.get(), `value="alice"`)

	rec = b.do(http.MethodPost, "/auth/field", url.Values{"field": {"role"}, "role": {"admin"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = b.do(http.MethodPost, "/auth/field", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModePost_ClearsFields(t *testing.T) {
	e, forms := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()
	b.do(http.MethodPost, "/auth/field", url.Values{"field": {"email"}, "email": {"keep@x.com"}})

	b.post("/auth/mode", nil)
	body := b.get()
	assert.Contains(t, body, "Create Account")
	assert.NotContains(t, body, "keep@x.com")

	b.post("/auth/mode", nil)
	assert.Contains(t, b.get(), "Welcome Back")
	assert.Equal(t, 1, forms.Len())
}

func TestConcurrentActions_OneSession(t *testing.T) {
	e, forms := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()
	cookies := make([]*http.Cookie, 0, len(b.cookies))
	for _, c := range b.cookies {
		cookies = append(cookies, c)
	}

	send := func(path string, form url.Values) int {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	const switches = 41
	var wg sync.WaitGroup
	for i := 0; i < switches; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Equal(t, http.StatusSeeOther, send("/auth/mode", url.Values{}))
		}()
		go func() {
			defer wg.Done()
			code := send("/auth/field", url.Values{"field": {"username"}, "username": {"alice"}})
			assert.Equal(t, http.StatusNoContent, code)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, forms.Len())
	assert.Contains(t, b.get(), "Create Account", "an odd number of switches ends in sign-up")
}

func TestLoadForm_ExpiredFormIsRemounted(t *testing.T) {
	e, forms := setupAuthTest(t)
	b := newBrowser(t, e)
	b.get()
	b.post("/auth/mode", nil)

	forms.Sweep(-1)
	require.Zero(t, forms.Len())

	body := b.get()
	assert.Contains(t, body, "Welcome Back")
	assert.Equal(t, 1, forms.Len())
}

func TestValidator_FieldUpdateRequest(t *testing.T) {
	v := handlers.NewValidator()
	for _, f := range authform.AllFields() {
		req := handlers.FieldUpdateRequest{Field: string(f)}
		assert.NoError(t, v.Validate(&req))
		assert.Equal(t, f, req.Target())
	}
	assert.Error(t, v.Validate(&handlers.FieldUpdateRequest{Field: "role"}))
	assert.Error(t, v.Validate(&handlers.FieldUpdateRequest{Field: "Username"}))
}
