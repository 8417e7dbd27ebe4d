package service

import (
	"context"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultRenewalWeeks is how far ahead the renewal form proposes.
	DefaultRenewalWeeks = 3
	// MaxRenewalWeeks bounds how far ahead a renewal may go.
	MaxRenewalWeeks = 4

	msgRenewalInPast    = "Invalid date - renewal in past"
	msgRenewalTooFar    = "Invalid date - renewal more than 4 weeks ahead"
	msgRequired         = "This field is required."
	renewalDateFieldKey = "renewal_date"
)

// ValidateRenewalDate accepts dates from today through four weeks ahead, inclusive.
func ValidateRenewalDate(date, today model.Date) error {
	if date.Before(today) {
		return errs.NewValidationError(renewalDateFieldKey, msgRenewalInPast)
	}
	if date.After(today.AddDays(7 * MaxRenewalWeeks)) {
		return errs.NewValidationError(renewalDateFieldKey, msgRenewalTooFar)
	}
	return nil
}

func decisionErr(d auth.Decision) error {
	switch d {
	case auth.Allowed:
		return nil
	case auth.Unauthenticated:
		return errs.ErrUnauthenticated
	default:
		return errs.ErrPermissionDenied
	}
}

// ListLoanedByUser lists the copies p has on loan.
func (s *Service) ListLoanedByUser(ctx context.Context, p auth.Principal, page int) (model.ListBookInstances, error) {
	if err := decisionErr(auth.Authorize(p)); err != nil {
		return model.ListBookInstances{}, err
	}
	if err := checkPage(page); err != nil {
		return model.ListBookInstances{}, err
	}
	loans, err := s.repo.ListLoanedByUser(ctx, p.UserID, page, model.PageSize)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	if err := checkPageRange(loans.Paging); err != nil {
		return model.ListBookInstances{}, err
	}
	loans.Items = s.markOverdue(loans.Items)
	return loans, nil
}

// ListLoaned lists every copy on loan, for staff.
func (s *Service) ListLoaned(ctx context.Context, p auth.Principal, page int) (model.ListBookInstances, error) {
	if err := decisionErr(auth.Authorize(p, auth.PermCanMarkReturned)); err != nil {
		return model.ListBookInstances{}, err
	}
	if err := checkPage(page); err != nil {
		return model.ListBookInstances{}, err
	}
	loans, err := s.repo.ListLoaned(ctx, page, model.PageSize)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	if err := checkPageRange(loans.Paging); err != nil {
		return model.ListBookInstances{}, err
	}
	loans.Items = s.markOverdue(loans.Items)
	return loans, nil
}

// RenewalForm returns the copy and the proposed renewal date, three weeks from today.
func (s *Service) RenewalForm(ctx context.Context, p auth.Principal, id uuid.UUID) (model.RenewalForm, error) {
	if err := decisionErr(auth.Authorize(p, auth.PermCanMarkReturned)); err != nil {
		return model.RenewalForm{}, err
	}
	bi, err := s.repo.GetBookInstance(ctx, id)
	if err != nil {
		return model.RenewalForm{}, err
	}
	today := s.today()
	bi.Overdue = bi.IsOverdue(today)
	return model.RenewalForm{
		BookInstance: bi,
		RenewalDate:  today.AddDays(7 * DefaultRenewalWeeks),
	}, nil
}

// Renew moves the due date of the copy. Only due_back is written; status is left alone.
func (s *Service) Renew(ctx context.Context, p auth.Principal, id uuid.UUID, date *model.Date) error {
	if err := decisionErr(auth.Authorize(p, auth.PermCanMarkReturned)); err != nil {
		return err
	}
	if _, err := s.repo.GetBookInstance(ctx, id); err != nil {
		return err
	}
	if date == nil {
		return errs.NewValidationError(renewalDateFieldKey, msgRequired)
	}
	if err := ValidateRenewalDate(*date, s.today()); err != nil {
		return err
	}
	if err := s.repo.SetDueBack(ctx, id, *date); err != nil {
		return err
	}
	s.log.Info("renewed",
		zap.Stringer("instance", id),
		zap.Stringer("dueBack", date),
		zap.String("by", p.Username))
	return nil
}
