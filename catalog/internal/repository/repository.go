package repository

import (
	"context"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CountBooks(ctx context.Context) (int, error)
	CountBookInstances(ctx context.Context) (int, error)
	CountBookInstancesByStatus(ctx context.Context, status model.LoanStatus) (int, error)
	CountAuthors(ctx context.Context) (int, error)
	CountBooksWithTitlePrefix(ctx context.Context, prefix string) (int, error)
	CountBooksInAllGenres(ctx context.Context, genres ...string) (int, error)

	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	GetLanguage(ctx context.Context, id int64) (model.Language, error)
	ListBookGenres(ctx context.Context, bookID int64) ([]model.Genre, error)
	ListBookInstancesByBook(ctx context.Context, bookID int64) ([]model.BookInstance, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)

	ListLoanedByUser(ctx context.Context, userID int64, page, size int) (model.ListBookInstances, error)
	ListLoaned(ctx context.Context, page, size int) (model.ListBookInstances, error)
	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	SetDueBack(ctx context.Context, id uuid.UUID, dueBack model.Date) error

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
	CreateBookInstance(ctx context.Context, req model.BookInstanceRequest) (uuid.UUID, error)
	UpdateBookInstance(ctx context.Context, id uuid.UUID, req model.BookInstanceRequest) error
	DeleteBookInstance(ctx context.Context, id uuid.UUID) error
	ListBookInstances(ctx context.Context, q model.InstanceQuery, page, size int) (model.ListBookInstances, error)

	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUserByName(ctx context.Context, username string) (model.User, error)

	Visit(ctx context.Context, sessionID uuid.UUID) (int, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	genreTableName        = `genre`
	languageTableName     = `language`
	authorTableName       = `author`
	bookTableName         = `book`
	bookGenreTableName    = `book_genre`
	bookInstanceTableName = `book_instance`
	usersTableName        = `users`
	permissionsTableName  = `user_permissions`
	sessionTableName      = `session`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// unique constraint -> (field, message)
var uniqueConstraints = map[string][2]string{
	"book_isbn_key":      {"isbn", "Book with this ISBN already exists."},
	"language_name_key":  {"name", "Language with this name already exists."},
	"users_username_key": {"username", "A user with that username already exists."},
}

// foreign key constraint -> field
var foreignKeys = map[string]string{
	"book_author_id_fkey":            "authorId",
	"book_language_id_fkey":          "languageId",
	"book_genre_genre_id_fkey":       "genreIds",
	"book_instance_book_id_fkey":     "bookId",
	"book_instance_borrower_id_fkey": "borrowerId",
}

// translate turns constraint violations on insert/update into validation errors.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if u, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return errs.NewValidationError(u[0], u[1])
		}
		return errs.NewValidationError(pgErr.ConstraintName, "Value must be unique.")
	case pgerrcode.ForeignKeyViolation:
		field, ok := foreignKeys[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return errs.NewValidationError(field, "Select a valid choice. That choice is not one of the available choices.")
	case pgerrcode.CheckViolation:
		return errs.NewValidationError(pgErr.ConstraintName, "Select a valid choice.")
	case pgerrcode.StringDataRightTruncationDataException:
		return errs.NewValidationError(pgErr.ColumnName, "Value is too long.")
	}
	return err
}

// translateDelete reports restricted deletes as ErrProtected.
func translateDelete(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		(pgErr.Code == pgerrcode.ForeignKeyViolation || pgErr.Code == pgerrcode.RestrictViolation) {
		return errors.Wrap(errs.ErrProtected, pgErr.ConstraintName)
	}
	return err
}
