package repository

import (
	"context"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

func insertReturningID(ctx context.Context, db querier, b sq.InsertBuilder) (int64, error) {
	query, args, err := b.Suffix("returning id").ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (r *repository) CreateGenre(ctx context.Context, req model.CreateGenreRequest) (int64, error) {
	return insertReturningID(ctx, r.db, qb.Insert(genreTableName).
		Columns("name").
		Values(req.Name))
}

func (r *repository) DeleteGenre(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, qb.Delete(genreTableName).Where(sq.Eq{"id": id}), translateDelete)
}

func (r *repository) CreateLanguage(ctx context.Context, req model.CreateLanguageRequest) (int64, error) {
	return insertReturningID(ctx, r.db, qb.Insert(languageTableName).
		Columns("name").
		Values(req.Name))
}

// DeleteLanguage clears the language of its books.
func (r *repository) DeleteLanguage(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, qb.Delete(languageTableName).Where(sq.Eq{"id": id}), translateDelete)
}

func (r *repository) CreateAuthor(ctx context.Context, req model.AuthorRequest) (int64, error) {
	return insertReturningID(ctx, r.db, qb.Insert(authorTableName).
		Columns("first_name", "last_name", "date_of_birth", "date_of_death").
		Values(req.FirstName, req.LastName, req.DateOfBirth, req.DateOfDeath))
}

func (r *repository) UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) error {
	return execAffected(ctx, r.db, qb.Update(authorTableName).
		SetMap(map[string]interface{}{
			"first_name":    req.FirstName,
			"last_name":     req.LastName,
			"date_of_birth": req.DateOfBirth,
			"date_of_death": req.DateOfDeath,
		}).
		Where(sq.Eq{"id": id}), translate)
}

// DeleteAuthor keeps the author's books and clears their author.
func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, qb.Delete(authorTableName).Where(sq.Eq{"id": id}), translateDelete)
}

func (r *repository) CreateBook(ctx context.Context, req model.BookRequest) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		id, err = insertReturningID(ctx, tx, qb.Insert(bookTableName).
			Columns("title", "summary", "isbn", "author_id", "language_id").
			Values(req.Title, req.Summary, req.ISBN, req.AuthorID, req.LanguageID))
		if err != nil {
			return err
		}
		return setBookGenres(ctx, tx, id, req.GenreIDs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, req model.BookRequest) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := execAffected(ctx, tx, qb.Update(bookTableName).
			SetMap(map[string]interface{}{
				"title":       req.Title,
				"summary":     req.Summary,
				"isbn":        req.ISBN,
				"author_id":   req.AuthorID,
				"language_id": req.LanguageID,
			}).
			Where(sq.Eq{"id": id}), translate)
		if err != nil {
			return err
		}
		return setBookGenres(ctx, tx, id, req.GenreIDs)
	})
}

func setBookGenres(ctx context.Context, tx pgx.Tx, bookID int64, genreIDs []int64) error {
	query, args, err := qb.Delete(bookGenreTableName).Where(sq.Eq{"book_id": bookID}).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "clear genres")
	}
	if len(genreIDs) == 0 {
		return nil
	}
	ins := qb.Insert(bookGenreTableName).Columns("book_id", "genre_id")
	for _, genreID := range genreIDs {
		ins = ins.Values(bookID, genreID)
	}
	query, args, err = ins.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return translate(err)
	}
	return nil
}

// DeleteBook is refused with ErrProtected while copies of the book exist.
func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, qb.Delete(bookTableName).Where(sq.Eq{"id": id}), translateDelete)
}

func (r *repository) CreateBookInstance(ctx context.Context, req model.BookInstanceRequest) (uuid.UUID, error) {
	id := uuid.New()
	status := req.Status
	if status == "" {
		status = model.StatusMaintenance
	}
	query, args, err := qb.Insert(bookInstanceTableName).
		Columns("id", "book_id", "imprint", "due_back", "borrower_id", "status").
		Values(id, req.BookID, req.Imprint, req.DueBack, req.BorrowerID, status).
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, translate(err)
	}
	return id, nil
}

func (r *repository) UpdateBookInstance(ctx context.Context, id uuid.UUID, req model.BookInstanceRequest) error {
	status := req.Status
	if status == "" {
		status = model.StatusMaintenance
	}
	return execAffected(ctx, r.db, qb.Update(bookInstanceTableName).
		SetMap(map[string]interface{}{
			"book_id":     req.BookID,
			"imprint":     req.Imprint,
			"due_back":    req.DueBack,
			"borrower_id": req.BorrowerID,
			"status":      status,
		}).
		Where(sq.Eq{"id": id.String()}), translate)
}

func (r *repository) DeleteBookInstance(ctx context.Context, id uuid.UUID) error {
	return execAffected(ctx, r.db, qb.Delete(bookInstanceTableName).Where(sq.Eq{"id": id.String()}), translateDelete)
}
