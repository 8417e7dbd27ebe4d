package handler

import (
	"net/http"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateGenre(c echo.Context) error {
	var req model.CreateGenreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	id, err := h.adminSvc.CreateGenre(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.CreatedID{ID: id})
}

func (h *Handler) DeleteGenre(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.adminSvc.DeleteGenre(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateLanguage(c echo.Context) error {
	var req model.CreateLanguageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	id, err := h.adminSvc.CreateLanguage(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.CreatedID{ID: id})
}

func (h *Handler) DeleteLanguage(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.adminSvc.DeleteLanguage(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	id, err := h.adminSvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.CreatedID{ID: id})
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.AuthorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	if err := h.adminSvc.UpdateAuthor(c.Request().Context(), id, req); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.adminSvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	id, err := h.adminSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.CreatedID{ID: id})
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.BookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	if err := h.adminSvc.UpdateBook(c.Request().Context(), id, req); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteBook answers 409 while copies of the book exist.
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.adminSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBookInstances filters by ?status= and ?due_back= when given.
func (h *Handler) ListBookInstances(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return h.httpError(err)
	}
	var f model.BookInstanceFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		return h.httpError(err)
	}
	items, err := h.adminSvc.ListBookInstances(c.Request().Context(), f, page)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateBookInstance(c echo.Context) error {
	var req model.BookInstanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	id, err := h.adminSvc.CreateBookInstance(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.CreatedUUID{ID: id})
}

func (h *Handler) UpdateBookInstance(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}
	var req model.BookInstanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.httpError(err)
	}
	if err := h.adminSvc.UpdateBookInstance(c.Request().Context(), id, req); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteBookInstance(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}
	if err := h.adminSvc.DeleteBookInstance(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
