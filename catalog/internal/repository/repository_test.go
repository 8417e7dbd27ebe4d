//go:build integration
// +build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/repository"
	"github.com/Astemirdum/local-library/catalog/migrations"
	"github.com/Astemirdum/local-library/pkg/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

var pool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("catalog"),
		tcpostgres.WithUsername("catalog"),
		tcpostgres.WithPassword("catalog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "start postgres:", err)
		os.Exit(1)
	}
	code := func() int {
		defer func() { _ = container.Terminate(ctx) }()

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Fprintln(os.Stderr, "dsn:", err)
			return 1
		}
		pool, err = postgres.NewPool(ctx, dsn, 5)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pool:", err)
			return 1
		}
		defer pool.Close()
		if err := postgres.Migrate(pool, migrations.MigrationFiles); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			return 1
		}
		return m.Run()
	}()
	os.Exit(code)
}

// newRepo empties every table; tests sharing the database run sequentially.
func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`truncate book_instance, book_genre, book, author, language, genre, user_permissions, users, session restart identity cascade`)
	require.NoError(t, err)
	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func isbn(n int) string {
	return fmt.Sprintf("978%010d", n)
}

func mustBook(t *testing.T, repo repository.Repository, title string, n int, genreIDs ...int64) int64 {
	t.Helper()
	if len(genreIDs) == 0 {
		id, err := repo.CreateGenre(context.Background(), model.CreateGenreRequest{Name: "Fiction"})
		require.NoError(t, err)
		genreIDs = []int64{id}
	}
	id, err := repo.CreateBook(context.Background(), model.BookRequest{
		Title:    title,
		Summary:  "Summary of " + title,
		ISBN:     isbn(n),
		GenreIDs: genreIDs,
	})
	require.NoError(t, err)
	return id
}

func TestRepository_BookISBNUnique(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	mustBook(t, repo, "Dune", 1)

	genreID, err := repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Science Fiction"})
	require.NoError(t, err)
	_, err = repo.CreateBook(ctx, model.BookRequest{Title: "Dune Messiah", Summary: "s", ISBN: isbn(1), GenreIDs: []int64{genreID}})

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "isbn", verr.Field)
	n, err := repo.CountBooks(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRepository_LanguageUniqueGenreNot(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLanguage(ctx, model.CreateLanguageRequest{Name: "English"})
	require.NoError(t, err)
	_, err = repo.CreateLanguage(ctx, model.CreateLanguageRequest{Name: "English"})
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Fantasy"})
	require.NoError(t, err)
	_, err = repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Fantasy"})
	require.NoError(t, err)
}

func TestRepository_DeleteAuthorClearsBooks(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	authorID, err := repo.CreateAuthor(ctx, model.AuthorRequest{FirstName: "Frank", LastName: "Herbert"})
	require.NoError(t, err)
	genreID, err := repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Science Fiction"})
	require.NoError(t, err)
	bookID, err := repo.CreateBook(ctx, model.BookRequest{
		Title: "Dune", Summary: "Spice.", ISBN: isbn(1), AuthorID: &authorID, GenreIDs: []int64{genreID},
	})
	require.NoError(t, err)

	book, err := repo.GetBook(ctx, bookID)
	require.NoError(t, err)
	require.Equal(t, "Herbert, Frank", *book.AuthorName)

	require.NoError(t, repo.DeleteAuthor(ctx, authorID))
	book, err = repo.GetBook(ctx, bookID)
	require.NoError(t, err)
	require.Nil(t, book.AuthorID)
	require.Nil(t, book.AuthorName)

	_, err = repo.GetAuthor(ctx, authorID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_DeleteLanguageClearsBooks(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	languageID, err := repo.CreateLanguage(ctx, model.CreateLanguageRequest{Name: "English"})
	require.NoError(t, err)
	genreID, err := repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Science Fiction"})
	require.NoError(t, err)
	bookID, err := repo.CreateBook(ctx, model.BookRequest{
		Title: "Dune", Summary: "Spice.", ISBN: isbn(1), LanguageID: &languageID, GenreIDs: []int64{genreID},
	})
	require.NoError(t, err)

	book, err := repo.GetBook(ctx, bookID)
	require.NoError(t, err)
	require.Equal(t, languageID, *book.LanguageID)

	require.NoError(t, repo.DeleteLanguage(ctx, languageID))
	book, err = repo.GetBook(ctx, bookID)
	require.NoError(t, err)
	require.Nil(t, book.LanguageID)

	_, err = repo.GetLanguage(ctx, languageID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_ListAuthorsOrder(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, a := range []model.AuthorRequest{
		{FirstName: "Patrick", LastName: "Rothfuss"},
		{FirstName: "Terry", LastName: "Pratchett"},
		{FirstName: "Frank", LastName: "Herbert"},
		{FirstName: "Brian", LastName: "Herbert"},
		{FirstName: "Frank", LastName: "Herbert"},
	} {
		_, err := repo.CreateAuthor(ctx, a)
		require.NoError(t, err)
	}

	list, err := repo.ListAuthors(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 5, list.TotalElements)

	got := make([]string, 0, len(list.Items))
	for _, a := range list.Items {
		got = append(got, a.String())
	}
	require.Equal(t, []string{
		"Herbert, Brian", "Herbert, Frank", "Herbert, Frank", "Pratchett, Terry", "Rothfuss, Patrick",
	}, got)
	require.Less(t, list.Items[1].ID, list.Items[2].ID)
}

func TestRepository_DeleteBookRestricted(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	bookID := mustBook(t, repo, "Dune", 1)

	instanceID, err := repo.CreateBookInstance(ctx, model.BookInstanceRequest{BookID: bookID, Imprint: "Ace, 1990"})
	require.NoError(t, err)

	err = repo.DeleteBook(ctx, bookID)
	require.ErrorIs(t, err, errs.ErrProtected)
	_, err = repo.GetBook(ctx, bookID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteBookInstance(ctx, instanceID))
	require.NoError(t, repo.DeleteBook(ctx, bookID))
	require.ErrorIs(t, repo.DeleteBook(ctx, bookID), errs.ErrNotFound)
}

func TestRepository_BookInstanceDefaults(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	bookID := mustBook(t, repo, "Dune", 1)

	id, err := repo.CreateBookInstance(ctx, model.BookInstanceRequest{BookID: bookID, Imprint: "Ace, 1990"})
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), id.Version())

	bi, err := repo.GetBookInstance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.StatusMaintenance, bi.Status)
	require.Nil(t, bi.DueBack)
	require.Equal(t, "Dune", bi.BookTitle)
	require.Equal(t, fmt.Sprintf("%s (Dune)", id), bi.String())

	_, err = repo.CreateBookInstance(ctx, model.BookInstanceRequest{BookID: 999, Imprint: "x"})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestRepository_CountBooksInAllGenres(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	horror, err := repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Horror"})
	require.NoError(t, err)
	mg, err := repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Middle Grade"})
	require.NoError(t, err)

	mustBook(t, repo, "It", 1, horror)
	mustBook(t, repo, "Holes", 2, mg)
	mustBook(t, repo, "Goosebumps: Welcome to Dead House", 3, horror, mg)

	n, err := repo.CountBooksInAllGenres(ctx, "Horror", "Middle Grade")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = repo.CountBooksInAllGenres(ctx, "Horror")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestRepository_CountBooksWithTitlePrefix(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	mustBook(t, repo, "Goosebumps: Night of the Living Dummy", 1)
	mustBook(t, repo, "goosebumps lowercase", 2)
	mustBook(t, repo, "The Goosebumps Guide", 3)
	mustBook(t, repo, "100% Goosebumps", 4)

	n, err := repo.CountBooksWithTitlePrefix(ctx, "Goosebumps")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = repo.CountBooksWithTitlePrefix(ctx, "100%")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = repo.CountBooksWithTitlePrefix(ctx, "1_0")
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestRepository_ListBooksPagination(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	genreID, err := repo.CreateGenre(ctx, model.CreateGenreRequest{Name: "Fiction"})
	require.NoError(t, err)
	for i := 1; i <= 25; i++ {
		mustBook(t, repo, fmt.Sprintf("Book %02d", i), i, genreID)
	}

	for page, want := range map[int]int{1: 10, 2: 10, 3: 5, 4: 0} {
		books, err := repo.ListBooks(ctx, page, model.PageSize)
		require.NoError(t, err)
		require.Len(t, books.Items, want, "page %d", page)
		require.Equal(t, 25, books.TotalElements)
		require.Equal(t, 3, books.TotalPages)
	}

	first, err := repo.ListBooks(ctx, 1, model.PageSize)
	require.NoError(t, err)
	require.Equal(t, "Book 01", first.Items[0].Title)
}

func TestRepository_ListLoaned(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	bookID := mustBook(t, repo, "Dune", 1)

	alice, err := repo.CreateUser(ctx, model.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)
	bob, err := repo.CreateUser(ctx, model.User{Username: "bob", PasswordHash: "x"})
	require.NoError(t, err)

	late := model.NewDate(2026, time.June, 30)
	early := model.NewDate(2026, time.June, 1)
	loans := []model.BookInstanceRequest{
		{BookID: bookID, Imprint: "late", DueBack: &late, BorrowerID: &alice, Status: model.StatusOnLoan},
		{BookID: bookID, Imprint: "undated", BorrowerID: &alice, Status: model.StatusOnLoan},
		{BookID: bookID, Imprint: "early", DueBack: &early, BorrowerID: &alice, Status: model.StatusOnLoan},
		{BookID: bookID, Imprint: "bob", DueBack: &early, BorrowerID: &bob, Status: model.StatusOnLoan},
		{BookID: bookID, Imprint: "returned", DueBack: &early, BorrowerID: &alice, Status: model.StatusAvailable},
	}
	for _, req := range loans {
		_, err := repo.CreateBookInstance(ctx, req)
		require.NoError(t, err)
	}

	mine, err := repo.ListLoanedByUser(ctx, alice, 1, model.PageSize)
	require.NoError(t, err)
	require.Equal(t, 3, mine.TotalElements)
	imprints := make([]string, 0, len(mine.Items))
	for _, bi := range mine.Items {
		imprints = append(imprints, bi.Imprint)
		require.Equal(t, "alice", *bi.BorrowerName)
	}
	require.Equal(t, []string{"early", "late", "undated"}, imprints)

	all, err := repo.ListLoaned(ctx, 1, model.PageSize)
	require.NoError(t, err)
	require.Equal(t, 4, all.TotalElements)

	available, err := repo.CountBookInstancesByStatus(ctx, model.StatusAvailable)
	require.NoError(t, err)
	require.Equal(t, 1, available)
}

func TestRepository_ListBookInstancesFilter(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	bookID := mustBook(t, repo, "Dune", 1)

	may1, may20, june1 := model.NewDate(2026, time.May, 1), model.NewDate(2026, time.May, 20), model.NewDate(2026, time.June, 1)
	for _, req := range []model.BookInstanceRequest{
		{Imprint: "first of may", DueBack: &may1, Status: model.StatusOnLoan},
		{Imprint: "may twentieth", DueBack: &may20, Status: model.StatusReserved},
		{Imprint: "first of june", DueBack: &june1, Status: model.StatusOnLoan},
		{Imprint: "undated", Status: model.StatusAvailable},
	} {
		req.BookID = bookID
		_, err := repo.CreateBookInstance(ctx, req)
		require.NoError(t, err)
	}
	imprints := func(q model.InstanceQuery) []string {
		t.Helper()
		list, err := repo.ListBookInstances(ctx, q, 1, model.PageSize)
		require.NoError(t, err)
		require.Equal(t, len(list.Items), list.TotalElements)
		out := make([]string, 0, len(list.Items))
		for _, bi := range list.Items {
			out = append(out, bi.Imprint)
		}
		return out
	}
	dated := func(v bool) *bool { return &v }

	require.Equal(t, []string{"first of may", "may twentieth", "first of june", "undated"}, imprints(model.InstanceQuery{}))
	require.Equal(t, []string{"first of may", "may twentieth"}, imprints(model.InstanceQuery{DueFrom: &may1, DueTo: &june1}))
	require.Equal(t, []string{"first of may"}, imprints(model.InstanceQuery{Status: model.StatusOnLoan, DueTo: &june1}))
	require.Equal(t, []string{"undated"}, imprints(model.InstanceQuery{DueBackSet: dated(false)}))
	require.Equal(t, []string{"first of may", "may twentieth", "first of june"}, imprints(model.InstanceQuery{DueBackSet: dated(true)}))
}

func TestRepository_SetDueBack(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	bookID := mustBook(t, repo, "Dune", 1)
	id, err := repo.CreateBookInstance(ctx, model.BookInstanceRequest{BookID: bookID, Imprint: "Ace", Status: model.StatusOnLoan})
	require.NoError(t, err)

	due := model.NewDate(2026, time.July, 4)
	require.NoError(t, repo.SetDueBack(ctx, id, due))

	bi, err := repo.GetBookInstance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, due, *bi.DueBack)
	require.Equal(t, model.StatusOnLoan, bi.Status)

	require.ErrorIs(t, repo.SetDueBack(ctx, uuid.New(), due), errs.ErrNotFound)
}

func TestRepository_Visit(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	session := uuid.New()

	for want := 0; want < 3; want++ {
		got, err := repo.Visit(ctx, session)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	got, err := repo.Visit(ctx, uuid.New())
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestRepository_Users(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, model.User{
		Username:     "librarian",
		PasswordHash: "hash",
		Permissions:  []string{"catalog.manage_catalog", "catalog.can_mark_returned"},
	})
	require.NoError(t, err)

	u, err := repo.GetUserByName(ctx, "librarian")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, []string{"catalog.can_mark_returned", "catalog.manage_catalog"}, u.Permissions)

	_, err = repo.CreateUser(ctx, model.User{Username: "member", PasswordHash: "hash"})
	require.NoError(t, err)
	member, err := repo.GetUserByName(ctx, "member")
	require.NoError(t, err)
	require.Empty(t, member.Permissions)

	_, err = repo.CreateUser(ctx, model.User{Username: "librarian", PasswordHash: "hash"})
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "username", verr.Field)

	_, err = repo.GetUserByName(ctx, "ghost")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
