package service

import (
	"context"
	"time"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	catalogRepo "github.com/Astemirdum/local-library/catalog/internal/repository"
	"github.com/Astemirdum/local-library/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	goosebumpsPrefix = "Goosebumps"
	genreHorror      = "Horror"
	genreMiddleGrade = "Middle Grade"
)

type Service struct {
	log    *zap.Logger
	repo   catalogRepo.Repository
	issuer *auth.Issuer
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, which decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo catalogRepo.Repository, issuer *auth.Issuer, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}

// Summary gathers the home page counters. After they succeed the session's
// visit counter is bumped and its previous value reported.
func (s *Service) Summary(ctx context.Context, sessionID uuid.UUID) (model.Summary, error) {
	var sum model.Summary
	gg, gctx := errgroup.WithContext(ctx)
	counters := []struct {
		dst *int
		fn  func(ctx context.Context) (int, error)
	}{
		{&sum.NumBooks, s.repo.CountBooks},
		{&sum.NumInstances, s.repo.CountBookInstances},
		{&sum.NumInstancesAvailable, func(ctx context.Context) (int, error) {
			return s.repo.CountBookInstancesByStatus(ctx, model.StatusAvailable)
		}},
		{&sum.NumAuthors, s.repo.CountAuthors},
		{&sum.NumGoosebumps, func(ctx context.Context) (int, error) {
			return s.repo.CountBooksWithTitlePrefix(ctx, goosebumpsPrefix)
		}},
		{&sum.NumMiddleGradeHorror, func(ctx context.Context) (int, error) {
			return s.repo.CountBooksInAllGenres(ctx, genreHorror, genreMiddleGrade)
		}},
	}
	for _, c := range counters {
		gg.Go(func() error {
			n, err := c.fn(gctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return model.Summary{}, err
	}
	// counted only once the page can be served
	if sessionID != uuid.Nil {
		n, err := s.repo.Visit(ctx, sessionID)
		if err != nil {
			return model.Summary{}, err
		}
		sum.NumVisits = n
	}
	return sum, nil
}

func checkPage(page int) error {
	if page < 1 {
		return errs.NewValidationError("page", "That page number is less than 1")
	}
	return nil
}

// checkPageRange rejects pages past the last one; page 1 of an empty list is fine.
func checkPageRange(p model.Paging) error {
	if p.Page > 1 && p.Page > p.TotalPages {
		return errs.ErrNotFound
	}
	return nil
}

func (s *Service) ListBooks(ctx context.Context, page int) (model.ListBooks, error) {
	if err := checkPage(page); err != nil {
		return model.ListBooks{}, err
	}
	books, err := s.repo.ListBooks(ctx, page, model.PageSize)
	if err != nil {
		return model.ListBooks{}, err
	}
	return books, checkPageRange(books.Paging)
}

func (s *Service) ListAuthors(ctx context.Context, page int) (model.ListAuthors, error) {
	if err := checkPage(page); err != nil {
		return model.ListAuthors{}, err
	}
	authors, err := s.repo.ListAuthors(ctx, page, model.PageSize)
	if err != nil {
		return model.ListAuthors{}, err
	}
	return authors, checkPageRange(authors.Paging)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.BookDetail, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDetail{}, err
	}
	detail := model.BookDetail{Book: book}

	gg, ctx := errgroup.WithContext(ctx)
	if book.AuthorID != nil {
		gg.Go(func() error {
			author, err := s.repo.GetAuthor(ctx, *book.AuthorID)
			if err != nil {
				return err
			}
			detail.Author = &author
			return nil
		})
	}
	if book.LanguageID != nil {
		gg.Go(func() error {
			lang, err := s.repo.GetLanguage(ctx, *book.LanguageID)
			if err != nil {
				return err
			}
			detail.Language = &lang
			return nil
		})
	}
	gg.Go(func() error {
		genres, err := s.repo.ListBookGenres(ctx, id)
		if err != nil {
			return err
		}
		detail.Genres = genres
		detail.Genre = model.DisplayGenre(genres)
		return nil
	})
	gg.Go(func() error {
		instances, err := s.repo.ListBookInstancesByBook(ctx, id)
		if err != nil {
			return err
		}
		detail.Instances = s.markOverdue(instances)
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.BookDetail{}, err
	}
	return detail, nil
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.AuthorDetail, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return model.AuthorDetail{}, err
	}
	books, err := s.repo.ListBooksByAuthor(ctx, id)
	if err != nil {
		return model.AuthorDetail{}, err
	}
	return model.AuthorDetail{Author: author, Books: books}, nil
}

func (s *Service) markOverdue(items []model.BookInstance) []model.BookInstance {
	today := s.today()
	for i := range items {
		items[i].Overdue = items[i].IsOverdue(today)
	}
	return items
}
