package database

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

var memberColumns = []string{"id", "start_time", "end_time", "weekends", "active"}

type memberRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newMemberRepo(db dbConn, sb sq.StatementBuilderType) contract.MemberRepo {
	return &memberRepo{db: db, sb: sb}
}

func (r *memberRepo) Create(ctx context.Context, member *entity.Member) error {
	query, args, err := r.sb.
		Insert("members").
		Columns(memberColumns...).
		Values(
			member.ID,
			member.StartTime,
			member.EndTime,
			member.ObserveWeekends,
			member.Active,
		).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeError("failed to create member", err)
	}
	return nil
}

func (r *memberRepo) Get(ctx context.Context, memberID string) (*entity.Member, error) {
	query, args, err := r.sb.
		Select(memberColumns...).
		From("members").
		Where(sq.Eq{"id": memberID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m entity.Member
	if err := r.db.GetContext(ctx, &m, query, args...); errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, storeError("failed to get member", err)
	}
	return &m, nil
}

func (r *memberRepo) Update(ctx context.Context, member *entity.Member) error {
	query, args, err := r.sb.
		Update("members").
		Set("start_time", member.StartTime).
		Set("end_time", member.EndTime).
		Set("weekends", member.ObserveWeekends).
		Where(sq.Eq{"id": member.ID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to update member", err)
	}
	return requireMember(result)
}

func (r *memberRepo) SetActive(ctx context.Context, memberID string, active bool) error {
	query, args, err := r.sb.
		Update("members").
		Set("active", active).
		Where(sq.Eq{"id": memberID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to set member active status", err)
	}
	return requireMember(result)
}

// requireMember reports ErrNotAMember when an update matched no row.
func requireMember(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to read affected rows", err)
	}
	if n == 0 {
		return domain.ErrNotAMember
	}
	return nil
}

func (r *memberRepo) Delete(ctx context.Context, memberID string) error {
	query, args, err := r.sb.
		Delete("members").
		Where(sq.Eq{"id": memberID}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeError("failed to delete member", err)
	}
	return nil
}

func (r *memberRepo) List(ctx context.Context) ([]*entity.Member, error) {
	return r.list(ctx, nil)
}

func (r *memberRepo) ListActive(ctx context.Context) ([]*entity.Member, error) {
	return r.list(ctx, sq.Eq{"active": true})
}

func (r *memberRepo) list(ctx context.Context, where sq.Sqlizer) ([]*entity.Member, error) {
	b := r.sb.
		Select(memberColumns...).
		From("members").
		OrderBy("id")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var members []*entity.Member
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, storeError("failed to list members", err)
	}
	return members, nil
}
