package handler

import (
	"context"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/service"
	"github.com/Astemirdum/local-library/pkg/auth"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	Summary(ctx context.Context, sessionID uuid.UUID) (model.Summary, error)
	ListBooks(ctx context.Context, page int) (model.ListBooks, error)
	ListAuthors(ctx context.Context, page int) (model.ListAuthors, error)
	GetBook(ctx context.Context, id int64) (model.BookDetail, error)
	GetAuthor(ctx context.Context, id int64) (model.AuthorDetail, error)
}

type LoanService interface {
	ListLoanedByUser(ctx context.Context, p auth.Principal, page int) (model.ListBookInstances, error)
	ListLoaned(ctx context.Context, p auth.Principal, page int) (model.ListBookInstances, error)
	RenewalForm(ctx context.Context, p auth.Principal, id uuid.UUID) (model.RenewalForm, error)
	Renew(ctx context.Context, p auth.Principal, id uuid.UUID, date *model.Date) error
}

type AdminService interface {
	CreateGenre(ctx context.Context, req model.CreateGenreRequest) (int64, error)
	DeleteGenre(ctx context.Context, id int64) error
	CreateLanguage(ctx context.Context, req model.CreateLanguageRequest) (int64, error)
	DeleteLanguage(ctx context.Context, id int64) error
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (int64, error)
	UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) error
	DeleteAuthor(ctx context.Context, id int64) error
	CreateBook(ctx context.Context, req model.BookRequest) (int64, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) error
	DeleteBook(ctx context.Context, id int64) error
	ListBookInstances(ctx context.Context, f model.BookInstanceFilter, page int) (model.ListBookInstances, error)
	CreateBookInstance(ctx context.Context, req model.BookInstanceRequest) (uuid.UUID, error)
	UpdateBookInstance(ctx context.Context, id uuid.UUID, req model.BookInstanceRequest) error
	DeleteBookInstance(ctx context.Context, id uuid.UUID) error
}

type AuthService interface {
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
}

var (
	_ CatalogService = (*service.Service)(nil)
	_ LoanService    = (*service.Service)(nil)
	_ AdminService   = (*service.Service)(nil)
	_ AuthService    = (*service.Service)(nil)
)
