package repository

import (
	"context"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	instanceColumns = []string{
		"bi.id", "bi.book_id", "b.title as book_title", "bi.imprint", "bi.due_back",
		"bi.borrower_id", "u.username as borrower_name", "bi.status",
	}
	// soonest due first, undated copies last
	instanceOrder = []string{"bi.due_back asc nulls last", "bi.id"}
)

func selectInstances() sq.SelectBuilder {
	return qb.Select(instanceColumns...).
		From(bookInstanceTableName + " bi").
		Join(bookTableName + " b on b.id = bi.book_id").
		LeftJoin(usersTableName + " u on u.id = bi.borrower_id")
}

func (r *repository) listInstances(ctx context.Context, where sq.Sqlizer, page, size int) (model.ListBookInstances, error) {
	countQ := qb.Select("count(*)").From(bookInstanceTableName + " bi")
	listQ := selectInstances()
	if where != nil {
		countQ = countQ.Where(where)
		listQ = listQ.Where(where)
	}
	total, err := count(ctx, r.db, countQ)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	items, err := selectAll[model.BookInstance](ctx, r.db, listQ.
		OrderBy(instanceOrder...).
		Limit(uint64(size)).
		Offset(uint64(model.Offset(page, size))))
	if err != nil {
		return model.ListBookInstances{}, err
	}
	return model.ListBookInstances{
		Paging: model.NewPaging(page, size, total),
		Items:  items,
	}, nil
}

func (r *repository) ListLoanedByUser(ctx context.Context, userID int64, page, size int) (model.ListBookInstances, error) {
	return r.listInstances(ctx, sq.Eq{"bi.status": model.StatusOnLoan, "bi.borrower_id": userID}, page, size)
}

func (r *repository) ListLoaned(ctx context.Context, page, size int) (model.ListBookInstances, error) {
	return r.listInstances(ctx, sq.Eq{"bi.status": model.StatusOnLoan}, page, size)
}

// ListBookInstances lists the copies matching q; a zero q matches every copy.
func (r *repository) ListBookInstances(ctx context.Context, q model.InstanceQuery, page, size int) (model.ListBookInstances, error) {
	where := sq.And{}
	if q.Status != "" {
		where = append(where, sq.Eq{"bi.status": q.Status})
	}
	if q.DueFrom != nil {
		where = append(where, sq.GtOrEq{"bi.due_back": *q.DueFrom})
	}
	if q.DueTo != nil {
		where = append(where, sq.Lt{"bi.due_back": *q.DueTo})
	}
	if q.DueBackSet != nil {
		if *q.DueBackSet {
			where = append(where, sq.NotEq{"bi.due_back": nil})
		} else {
			where = append(where, sq.Eq{"bi.due_back": nil})
		}
	}
	if len(where) == 0 {
		return r.listInstances(ctx, nil, page, size)
	}
	return r.listInstances(ctx, where, page, size)
}

func (r *repository) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	return selectOne[model.BookInstance](ctx, r.db, selectInstances().Where(sq.Eq{"bi.id": id.String()}))
}

// SetDueBack writes due_back only; concurrent renewals are last-write-wins.
func (r *repository) SetDueBack(ctx context.Context, id uuid.UUID, dueBack model.Date) error {
	return execAffected(ctx, r.db, qb.Update(bookInstanceTableName).
		Set("due_back", dueBack).
		Where(sq.Eq{"id": id.String()}), translate)
}
