package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

var (
	bookColumns = []string{
		"b.id", "b.title", "b.summary", "b.isbn", "b.author_id",
		"a.last_name || ', ' || a.first_name as author_name",
		"b.language_id",
	}
	authorColumns = []string{"id", "first_name", "last_name", "date_of_birth", "date_of_death"}
)

func selectBooks() sq.SelectBuilder {
	return qb.Select(bookColumns...).
		From(bookTableName + " b").
		LeftJoin(authorTableName + " a on a.id = b.author_id")
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return count(ctx, r.db, qb.Select("count(*)").From(bookTableName))
}

func (r *repository) CountBookInstances(ctx context.Context) (int, error) {
	return count(ctx, r.db, qb.Select("count(*)").From(bookInstanceTableName))
}

func (r *repository) CountBookInstancesByStatus(ctx context.Context, status model.LoanStatus) (int, error) {
	return count(ctx, r.db, qb.Select("count(*)").
		From(bookInstanceTableName).
		Where(sq.Eq{"status": status}))
}

func (r *repository) CountAuthors(ctx context.Context) (int, error) {
	return count(ctx, r.db, qb.Select("count(*)").From(authorTableName))
}

// CountBooksWithTitlePrefix matches prefix literally and case-sensitively.
func (r *repository) CountBooksWithTitlePrefix(ctx context.Context, prefix string) (int, error) {
	return count(ctx, r.db, qb.Select("count(*)").
		From(bookTableName).
		Where(sq.Like{"title": escapeLike(prefix) + "%"}))
}

// CountBooksInAllGenres counts books linked to every one of genres.
func (r *repository) CountBooksInAllGenres(ctx context.Context, genres ...string) (int, error) {
	q := qb.Select("count(*)").From(bookTableName + " b")
	for _, name := range genres {
		q = q.Where(sq.Expr(fmt.Sprintf(`exists (
	select 1 from %s bg join %s g on g.id = bg.genre_id
	where bg.book_id = b.id and g.name = ?)`, bookGenreTableName, genreTableName), name))
	}
	return count(ctx, r.db, q)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *repository) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	total, err := r.CountBooks(ctx)
	if err != nil {
		return model.ListBooks{}, err
	}
	q := selectBooks().
		OrderBy("b.id").
		Limit(uint64(size)).
		Offset(uint64(model.Offset(page, size)))
	r.log.Debug("ListBooks", zap.Int("page", page), zap.Int("total", total))

	books, err := selectAll[model.Book](ctx, r.db, q)
	if err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{
		Paging: model.NewPaging(page, size, total),
		Items:  books,
	}, nil
}

func (r *repository) ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error) {
	total, err := r.CountAuthors(ctx)
	if err != nil {
		return model.ListAuthors{}, err
	}
	q := qb.Select(authorColumns...).
		From(authorTableName).
		OrderBy("last_name", "first_name", "id").
		Limit(uint64(size)).
		Offset(uint64(model.Offset(page, size)))

	authors, err := selectAll[model.Author](ctx, r.db, q)
	if err != nil {
		return model.ListAuthors{}, err
	}
	return model.ListAuthors{
		Paging: model.NewPaging(page, size, total),
		Items:  authors,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return selectOne[model.Book](ctx, r.db, selectBooks().Where(sq.Eq{"b.id": id}))
}

func (r *repository) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return selectOne[model.Author](ctx, r.db, qb.Select(authorColumns...).
		From(authorTableName).
		Where(sq.Eq{"id": id}))
}

func (r *repository) GetLanguage(ctx context.Context, id int64) (model.Language, error) {
	return selectOne[model.Language](ctx, r.db, qb.Select("id", "name").
		From(languageTableName).
		Where(sq.Eq{"id": id}))
}

func (r *repository) ListBookGenres(ctx context.Context, bookID int64) ([]model.Genre, error) {
	return selectAll[model.Genre](ctx, r.db, qb.Select("g.id", "g.name").
		From(genreTableName+" g").
		Join(bookGenreTableName+" bg on bg.genre_id = g.id").
		Where(sq.Eq{"bg.book_id": bookID}).
		OrderBy("g.id"))
}

func (r *repository) ListBookInstancesByBook(ctx context.Context, bookID int64) ([]model.BookInstance, error) {
	return selectAll[model.BookInstance](ctx, r.db, selectInstances().
		Where(sq.Eq{"bi.book_id": bookID}).
		OrderBy(instanceOrder...))
}

func (r *repository) ListBooksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	return selectAll[model.Book](ctx, r.db, selectBooks().
		Where(sq.Eq{"b.author_id": authorID}).
		OrderBy("b.id"))
}
