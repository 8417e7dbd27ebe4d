package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/pkg/auth"
	md "github.com/Astemirdum/local-library/pkg/middleware"
	"github.com/labstack/echo/v4"
)

// LoginPage tells the client where to post credentials and where it will be sent after.
func (h *Handler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"login": md.LoginURL,
		"next":  c.QueryParam("next"),
	})
}

// Login issues an access token as JSON and as a cookie. With a local ?next= it redirects there.
func (h *Handler) Login(c echo.Context) error {
	var req model.AuthRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	resp, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    resp.AccessToken,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	if next := c.QueryParam("next"); isLocalPath(next) {
		return c.Redirect(http.StatusFound, next)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, `\`)
}
