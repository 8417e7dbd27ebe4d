package repository

import (
	"context"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		id, err = insertReturningID(ctx, tx, qb.Insert(usersTableName).
			Columns("username", "password_hash", "is_superuser").
			Values(user.Username, user.PasswordHash, user.IsSuperuser))
		if err != nil {
			return err
		}
		if len(user.Permissions) == 0 {
			return nil
		}
		ins := qb.Insert(permissionsTableName).Columns("user_id", "codename")
		for _, perm := range user.Permissions {
			ins = ins.Values(id, perm)
		}
		query, args, err := ins.Suffix("on conflict do nothing").ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, query, args...)
		return errors.Wrap(err, "grant permissions")
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) GetUserByName(ctx context.Context, username string) (model.User, error) {
	return selectOne[model.User](ctx, r.db, qb.Select(
		"u.id", "u.username", "u.password_hash", "u.is_superuser",
		"coalesce(array_agg(p.codename order by p.codename) filter (where p.codename is not null), '{}') as permissions",
	).
		From(usersTableName+" u").
		LeftJoin(permissionsTableName+" p on p.user_id = u.id").
		Where(sq.Eq{"u.username": username}).
		GroupBy("u.id"))
}

// Visit bumps the session's counter and returns its value before this visit.
func (r *repository) Visit(ctx context.Context, sessionID uuid.UUID) (int, error) {
	query, args, err := qb.Insert(sessionTableName).
		Columns("id", "num_visits").
		Values(sessionID, 1).
		Suffix(`on conflict (id) do update
	set num_visits = ` + sessionTableName + `.num_visits + 1, updated_at = now()
	returning num_visits - 1`).
		ToSql()
	if err != nil {
		return 0, err
	}
	var visits int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&visits); err != nil {
		return 0, errors.Wrap(err, "visit")
	}
	return visits, nil
}
