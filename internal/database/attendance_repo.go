package database

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

var attendanceColumns = []string{"member_id", "day", "woke_up", "notified"}

type attendanceRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newAttendanceRepo(db dbConn, sb sq.StatementBuilderType) contract.AttendanceRepo {
	return &attendanceRepo{db: db, sb: sb}
}

// GetOrCreate returns the record of memberID for day, inserting an empty one if missing
func (r *attendanceRepo) GetOrCreate(ctx context.Context, memberID, day string) (*entity.Attendance, error) {
	query, args, err := r.sb.
		Insert("attendance").
		Columns(attendanceColumns...).
		Values(memberID, day, false, false).
		Suffix("ON CONFLICT (member_id, day) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, storeError("failed to create attendance", err)
	}

	query, args, err = r.sb.
		Select(attendanceColumns...).
		From("attendance").
		Where(sq.Eq{"member_id": memberID, "day": day}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var a entity.Attendance
	if err := r.db.GetContext(ctx, &a, query, args...); err != nil {
		return nil, storeError("failed to get attendance", err)
	}
	return &a, nil
}

// MarkWokeUp sets woke_up only while neither outcome has been recorded for the day
func (r *attendanceRepo) MarkWokeUp(ctx context.Context, memberID, day string) (bool, error) {
	query, args, err := r.sb.
		Update("attendance").
		Set("woke_up", true).
		Where(sq.Eq{
			"member_id": memberID,
			"day":       day,
			"woke_up":   false,
			"notified":  false,
		}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storeError("failed to mark woke up", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, storeError("failed to get rows affected", err)
	}
	return n == 1, nil
}

// MarkNotified sets notified once per day and reports whether the member had woken up
func (r *attendanceRepo) MarkNotified(ctx context.Context, memberID, day string) (bool, bool, error) {
	query, args, err := r.sb.
		Update("attendance").
		Set("notified", true).
		Where(sq.Eq{
			"member_id": memberID,
			"day":       day,
			"notified":  false,
		}).
		Suffix("RETURNING woke_up").
		ToSql()
	if err != nil {
		return false, false, err
	}

	var wokeUp bool
	err = r.db.QueryRowxContext(ctx, query, args...).Scan(&wokeUp)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, storeError("failed to mark notified", err)
	}
	return true, wokeUp, nil
}

func (r *attendanceRepo) DeleteByMember(ctx context.Context, memberID string) error {
	query, args, err := r.sb.
		Delete("attendance").
		Where(sq.Eq{"member_id": memberID}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeError("failed to delete attendance", err)
	}
	return nil
}

func (r *attendanceRepo) ListByMember(ctx context.Context, memberID string) ([]*entity.Attendance, error) {
	return r.list(ctx, sq.Eq{"member_id": memberID})
}

func (r *attendanceRepo) List(ctx context.Context) ([]*entity.Attendance, error) {
	return r.list(ctx, nil)
}

func (r *attendanceRepo) list(ctx context.Context, where sq.Sqlizer) ([]*entity.Attendance, error) {
	b := r.sb.
		Select(attendanceColumns...).
		From("attendance").
		OrderBy("day", "member_id")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var records []*entity.Attendance
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, storeError("failed to list attendance", err)
	}
	return records, nil
}
