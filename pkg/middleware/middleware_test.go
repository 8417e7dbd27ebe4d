package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Astemirdum/local-library/pkg/auth"
	md "github.com/Astemirdum/local-library/pkg/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGuards(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer(auth.Config{Secret: "test", TTL: time.Hour})
	staffToken, _, err := issuer.Issue(auth.Principal{UserID: 1, Username: "staff", Permissions: []string{auth.PermCanMarkReturned}})
	require.NoError(t, err)
	readerToken, _, err := issuer.Issue(auth.Principal{UserID: 2, Username: "reader"})
	require.NoError(t, err)

	ok := func(c echo.Context) error { return c.String(http.StatusOK, auth.FromContext(c.Request().Context()).Username) }

	e := echo.New()
	e.Use(md.Authenticate(issuer, zap.NewNop()))
	e.GET("/mybooks/", ok, md.LoginRequired)
	e.GET("/borrowed/", ok, md.PermissionRequired(auth.PermCanMarkReturned))
	e.GET("/api/admin", ok, md.APIPermissionRequired(auth.PermCanMarkReturned))

	tests := []struct {
		name     string
		path     string
		token    string
		cookie   bool
		code     int
		body     string
		location string
	}{
		{name: "anonymous login required", path: "/mybooks/", code: http.StatusFound, location: "/accounts/login/?next=%2Fmybooks%2F"},
		{name: "reader login required", path: "/mybooks/", token: readerToken, code: http.StatusOK, body: "reader"},
		{name: "reader via cookie", path: "/mybooks/", token: readerToken, cookie: true, code: http.StatusOK, body: "reader"},
		{name: "bad token is anonymous", path: "/mybooks/", token: "junk", code: http.StatusFound, location: "/accounts/login/?next=%2Fmybooks%2F"},
		{name: "anonymous permission", path: "/borrowed/", code: http.StatusFound, location: "/accounts/login/?next=%2Fborrowed%2F"},
		{name: "reader permission", path: "/borrowed/", token: readerToken, code: http.StatusForbidden},
		{name: "staff permission", path: "/borrowed/", token: staffToken, code: http.StatusOK, body: "staff"},
		{name: "api anonymous", path: "/api/admin", code: http.StatusUnauthorized},
		{name: "api reader", path: "/api/admin", token: readerToken, code: http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			if tt.token != "" {
				if tt.cookie {
					r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.token})
				} else {
					r.Header.Set(md.AuthorizationHeader, "Bearer "+tt.token)
				}
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				require.Equal(t, tt.body, w.Body.String())
			}
			if tt.location != "" {
				require.Equal(t, tt.location, w.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestSession(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.Use(md.Session)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, md.SessionID(c).String())
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, md.SessionCookieName, cookies[0].Name)
	require.Equal(t, cookies[0].Value, w.Body.String())

	existing := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.AddCookie(&http.Cookie{Name: md.SessionCookieName, Value: existing.String()})
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, existing.String(), w.Body.String())
	require.Empty(t, w.Result().Cookies())
}
