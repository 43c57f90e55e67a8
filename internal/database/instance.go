package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	memberRepo     contract.MemberRepo
	attendanceRepo contract.AttendanceRepo
	configRepo     contract.ConfigRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn, db.builder())
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(conn dbConn, sb sq.StatementBuilderType) *instance {
	return &instance{
		memberRepo:     newMemberRepo(conn, sb),
		attendanceRepo: newAttendanceRepo(conn, sb),
		configRepo:     newConfigRepo(conn, sb),
	}
}

// Member returns the member repository
func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

// Attendance returns the attendance repository
func (i *instance) Attendance() contract.AttendanceRepo {
	return i.attendanceRepo
}

// Config returns the config repository
func (i *instance) Config() contract.ConfigRepo {
	return i.configRepo
}

// WithTransaction executes a function within a database transaction.
// Calling it on an instance that is already inside a transaction reuses that transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.Begin(ctx)
	if err != nil {
		return storeError("failed to begin transaction", err)
	}

	txInstance := repoInstancesWithConn(tx, i.db.builder())
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("failed to commit transaction", err)
	}
	return nil
}

// storeError marks a driver failure as a store outage while keeping the cause
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
