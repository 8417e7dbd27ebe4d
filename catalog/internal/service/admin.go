package service

import (
	"context"
	"time"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/google/uuid"
)

func (s *Service) CreateGenre(ctx context.Context, req model.CreateGenreRequest) (int64, error) {
	return s.repo.CreateGenre(ctx, req)
}

func (s *Service) DeleteGenre(ctx context.Context, id int64) error {
	return s.repo.DeleteGenre(ctx, id)
}

func (s *Service) CreateLanguage(ctx context.Context, req model.CreateLanguageRequest) (int64, error) {
	return s.repo.CreateLanguage(ctx, req)
}

func (s *Service) DeleteLanguage(ctx context.Context, id int64) error {
	return s.repo.DeleteLanguage(ctx, id)
}

func validateAuthor(req model.AuthorRequest) error {
	if req.DateOfBirth != nil && req.DateOfDeath != nil && req.DateOfDeath.Before(*req.DateOfBirth) {
		return errs.NewValidationError("dateOfDeath", "Date of death is before date of birth.")
	}
	return nil
}

func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorRequest) (int64, error) {
	if err := validateAuthor(req); err != nil {
		return 0, err
	}
	return s.repo.CreateAuthor(ctx, req)
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) error {
	if err := validateAuthor(req); err != nil {
		return err
	}
	return s.repo.UpdateAuthor(ctx, id, req)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (int64, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.BookRequest) error {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) ListBookInstances(ctx context.Context, f model.BookInstanceFilter, page int) (model.ListBookInstances, error) {
	if f.Status != "" && !f.Status.Valid() {
		return model.ListBookInstances{}, errs.NewValidationError("status", "Select a valid choice.")
	}
	q, err := instanceQuery(f, s.today())
	if err != nil {
		return model.ListBookInstances{}, err
	}
	if err := checkPage(page); err != nil {
		return model.ListBookInstances{}, err
	}
	items, err := s.repo.ListBookInstances(ctx, q, page, model.PageSize)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	if err := checkPageRange(items.Paging); err != nil {
		return model.ListBookInstances{}, err
	}
	items.Items = s.markOverdue(items.Items)
	return items, nil
}

// instanceQuery turns the due_back bucket into a [from, to) day range relative to today.
func instanceQuery(f model.BookInstanceFilter, today model.Date) (model.InstanceQuery, error) {
	q := model.InstanceQuery{Status: f.Status}
	set := func(v bool) *bool { return &v }
	between := func(from, to model.Date) {
		q.DueFrom, q.DueTo = &from, &to
	}
	y, m, _ := today.Date()
	switch f.DueBack {
	case model.DueBackAny:
	case model.DueBackToday:
		between(today, today.AddDays(1))
	case model.DueBackPast7Days:
		between(today.AddDays(-7), today.AddDays(1))
	case model.DueBackThisMonth:
		first := model.NewDate(y, m, 1)
		between(first, model.Date{Time: first.AddDate(0, 1, 0)})
	case model.DueBackThisYear:
		between(model.NewDate(y, time.January, 1), model.NewDate(y+1, time.January, 1))
	case model.DueBackNoDate:
		q.DueBackSet = set(false)
	case model.DueBackHasDate:
		q.DueBackSet = set(true)
	default:
		return model.InstanceQuery{}, errs.NewValidationError("due_back", "Select a valid choice.")
	}
	return q, nil
}

func (s *Service) CreateBookInstance(ctx context.Context, req model.BookInstanceRequest) (uuid.UUID, error) {
	return s.repo.CreateBookInstance(ctx, req)
}

func (s *Service) UpdateBookInstance(ctx context.Context, id uuid.UUID, req model.BookInstanceRequest) error {
	return s.repo.UpdateBookInstance(ctx, id, req)
}

func (s *Service) DeleteBookInstance(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBookInstance(ctx, id)
}
