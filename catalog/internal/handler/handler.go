package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/pkg/auth"
	md "github.com/Astemirdum/local-library/pkg/middleware"
	"github.com/Astemirdum/local-library/pkg/validate"
	_ "github.com/Astemirdum/local-library/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc CatalogService
	loanSvc    LoanService
	adminSvc   AdminService
	authSvc    AuthService
	issuer     *auth.Issuer
	log        *zap.Logger
}

func New(catalogSvc CatalogService, loanSvc LoanService, adminSvc AdminService, authSvc AuthService, issuer *auth.Issuer, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		loanSvc:    loanSvc,
		adminSvc:   adminSvc,
		authSvc:    authSvc,
		issuer:     issuer,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	site := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.Authenticate(h.issuer, h.log),
	)
	site.GET("/", h.Index, md.Session)
	site.GET("/books/", h.ListBooks)
	site.GET("/book/:id", h.GetBook)
	site.GET("/authors/", h.ListAuthors)
	site.GET("/author/:id", h.GetAuthor)

	site.GET("/mybooks/", h.MyBooks, md.LoginRequired)
	staff := site.Group("", md.PermissionRequired(auth.PermCanMarkReturned))
	staff.GET("/borrowed/", h.Borrowed)
	staff.GET("/book/:id/renew/", h.RenewalForm)
	staff.POST("/book/:id/renew/", h.Renew)

	site.GET("/accounts/login/", h.LoginPage)
	site.POST("/accounts/login/", h.Login)
	site.GET("/accounts/logout/", h.Logout)
	site.POST("/accounts/logout/", h.Logout)

	admin := site.Group("/api/v1/admin", md.APIPermissionRequired(auth.PermManageCatalog))
	admin.POST("/genres", h.CreateGenre)
	admin.DELETE("/genres/:id", h.DeleteGenre)
	admin.POST("/languages", h.CreateLanguage)
	admin.DELETE("/languages/:id", h.DeleteLanguage)
	admin.POST("/authors", h.CreateAuthor)
	admin.PUT("/authors/:id", h.UpdateAuthor)
	admin.DELETE("/authors/:id", h.DeleteAuthor)
	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:id", h.UpdateBook)
	admin.DELETE("/books/:id", h.DeleteBook)
	admin.GET("/bookinstances", h.ListBookInstances)
	admin.POST("/bookinstances", h.CreateBookInstance)
	admin.PUT("/bookinstances/:id", h.UpdateBookInstance)
	admin.DELETE("/bookinstances/:id", h.DeleteBookInstance)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Index reports the catalog counters and the caller's visit count.
func (h *Handler) Index(c echo.Context) error {
	sum, err := h.catalogSvc.Summary(c.Request().Context(), md.SessionID(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) ListBooks(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return h.httpError(err)
	}
	books, err := h.catalogSvc.ListBooks(c.Request().Context(), page)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return h.httpError(err)
	}
	authors, err := h.catalogSvc.ListAuthors(c.Request().Context(), page)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	author, err := h.catalogSvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

// pageParam reads ?page=, defaulting to 1.
func pageParam(c echo.Context) (int, error) {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError("page", "Page is not a number.")
	}
	return page, nil
}

// idParam parses an integer :id; anything else cannot name a record.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return id, nil
}
