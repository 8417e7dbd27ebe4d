package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Astemirdum/local-library/pkg/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "

	LoginURL          = "/accounts/login/"
	SessionCookieName = "sessionid"
)

// Authenticate resolves the caller from a bearer token or the access_token cookie.
// A missing or invalid token leaves the request anonymous; guards decide what that means.
func Authenticate(issuer *auth.Issuer, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c.Request())
			if token == "" {
				return next(c)
			}
			p, err := issuer.Parse(token)
			if err != nil {
				log.Debug("Authenticate", zap.Error(err))
				return next(c)
			}
			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithPrincipal(req.Context(), p)))
			return next(c)
		}
	}
}

func tokenFromRequest(r *http.Request) string {
	if authorization := r.Header.Get(AuthorizationHeader); strings.HasPrefix(authorization, bearer) {
		return strings.TrimPrefix(authorization, bearer)
	}
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// LoginRequired sends anonymous callers to the login page.
func LoginRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return guard(true)(next)
}

// PermissionRequired redirects anonymous callers to login and answers 403
// to authenticated callers lacking any of perms.
func PermissionRequired(perms ...string) echo.MiddlewareFunc {
	return guard(true, perms...)
}

// APIPermissionRequired is PermissionRequired for JSON clients: 401 instead of a redirect.
func APIPermissionRequired(perms ...string) echo.MiddlewareFunc {
	return guard(false, perms...)
}

func guard(redirect bool, perms ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch auth.Authorize(auth.FromContext(c.Request().Context()), perms...) {
			case auth.Allowed:
				return next(c)
			case auth.Unauthenticated:
				if redirect {
					return c.Redirect(http.StatusFound, LoginURL+"?next="+url.QueryEscape(c.Request().URL.RequestURI()))
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			default:
				return echo.NewHTTPError(http.StatusForbidden, "permission denied")
			}
		}
	}
}

type sessionKey struct{}

// Session makes sure every client carries a sessionid cookie and exposes it via SessionID.
func Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := sessionFromCookie(c)
		if err != nil {
			id = uuid.New()
			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    id.String(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(SessionCookieName, id)
		return next(c)
	}
}

func sessionFromCookie(c echo.Context) (uuid.UUID, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(cookie.Value)
}

// SessionID returns the id assigned by Session, or uuid.Nil outside it.
func SessionID(c echo.Context) uuid.UUID {
	id, _ := c.Get(SessionCookieName).(uuid.UUID)
	return id
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
