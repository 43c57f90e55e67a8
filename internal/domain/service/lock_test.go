package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/morning-club-bot/internal/clock"
	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

// overlap is how long a hook leaves a competing command to run before the
// hooked call goes on.
const overlap = 50 * time.Millisecond

type hookedDataManager struct {
	contract.DataManager
	members *hookedMemberRepo
}

func (d hookedDataManager) Member() contract.MemberRepo {
	return d.members
}

// hookedMemberRepo runs a callback after Get and before SetActive.
type hookedMemberRepo struct {
	contract.MemberRepo
	afterGet        func(memberID string)
	beforeSetActive func(memberID string, active bool)
}

func (r *hookedMemberRepo) Get(ctx context.Context, memberID string) (*entity.Member, error) {
	m, err := r.MemberRepo.Get(ctx, memberID)
	if r.afterGet != nil {
		r.afterGet(memberID)
	}
	return m, err
}

func (r *hookedMemberRepo) SetActive(ctx context.Context, memberID string, active bool) error {
	if r.beforeSetActive != nil {
		r.beforeSetActive(memberID, active)
	}
	return r.MemberRepo.SetActive(ctx, memberID, active)
}

// newHookedServices runs the services over the fixture store with hooks on
// the non transactional member reads and writes.
func newHookedServices(t *testing.T, f *clubFixture) (*Services, *hookedMemberRepo) {
	t.Helper()

	repo := &hookedMemberRepo{MemberRepo: f.dm.Member()}
	svc := New(hookedDataManager{DataManager: f.dm, members: repo}, f.notifier, Options{
		Clock:  f.clock,
		Logger: zerolog.Nop(),
		Retry:  testRetry,
	})
	t.Cleanup(svc.Attendance.Shutdown)
	return svc, repo
}

// race starts fn in a goroutine and gives it up to overlap to finish.
func race(fn func() error) <-chan error {
	result := make(chan error, 1)
	go func() { result <- fn() }()

	select {
	case err := <-result:
		result <- err
	case <-time.After(overlap):
	}
	return result
}

func (f *clubFixture) storedMember(t *testing.T, memberID string) *entity.Member {
	t.Helper()

	member, err := f.dm.Member().Get(context.Background(), memberID)
	require.NoError(t, err)
	return member
}

func Test_attendanceService_concurrentCommands(t *testing.T) {
	ctx := context.Background()
	window := domain.Window{Start: domain.NewTimeOfDay(6, 0, 0), End: domain.NewTimeOfDay(7, 0, 0)}

	t.Run("Should keep store and scheduler together when deactivate overlaps activate", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		svc, repo := newHookedServices(t, f)
		require.NoError(t, svc.Attendance.AddMember(ctx, "111", window, false))

		var (
			once        sync.Once
			deactivated <-chan error
		)
		repo.beforeSetActive = func(memberID string, active bool) {
			if !active {
				return
			}
			once.Do(func() {
				deactivated = race(func() error { return svc.Attendance.Deactivate(ctx, memberID) })
			})
		}

		require.NoError(t, svc.Attendance.Activate(ctx, "111"))
		require.NoError(t, <-deactivated)

		stored := f.storedMember(t, "111")
		require.NotNil(t, stored)
		assert.False(t, stored.Active)
		assert.False(t, svc.Scheduler.isActive("111"))
		assert.Equal(t, 0, svc.Attendance.locks.size())
	})

	t.Run("Should keep the member when remove overlaps activate", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		svc, repo := newHookedServices(t, f)
		require.NoError(t, svc.Attendance.AddMember(ctx, "111", window, false))

		var (
			once    sync.Once
			removed <-chan error
		)
		repo.afterGet = func(memberID string) {
			once.Do(func() {
				removed = race(func() error { return svc.Attendance.RemoveMember(ctx, memberID) })
			})
		}

		require.NoError(t, svc.Attendance.Activate(ctx, "111"))
		assert.ErrorIs(t, <-removed, domain.ErrMustDeactivateFirst)

		stored := f.storedMember(t, "111")
		require.NotNil(t, stored)
		assert.True(t, stored.Active)
		assert.True(t, svc.Scheduler.isActive("111"))
	})

	t.Run("Should not run a cycle for a member deleted before activation", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
		defer ctrl.Finish()

		m.mockMemberRepo.EXPECT().Get(gomock.Any(), "111").Return(&entity.Member{
			ID:        "111",
			StartTime: window.Start,
			EndTime:   window.End,
		}, nil)
		m.mockMemberRepo.EXPECT().SetActive(gomock.Any(), "111", true).Return(domain.ErrNotAMember)

		err := svc.Attendance.Activate(ctx, "111")
		assert.ErrorIs(t, err, domain.ErrNotAMember)
		assert.False(t, svc.Scheduler.isActive("111"))
	})
}

func Test_memberLocks(t *testing.T) {
	var locks memberLocks

	unlock := locks.lock("111")

	t.Run("Should not block other members", func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			locks.lock("222")()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lock on another member blocked")
		}
	})

	t.Run("Should block the same member until unlocked", func(t *testing.T) {
		acquired := make(chan struct{})
		go func() {
			locks.lock("111")()
			close(acquired)
		}()

		select {
		case <-acquired:
			t.Fatal("second lock acquired while held")
		case <-time.After(overlap):
		}

		unlock()
		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("second lock never acquired")
		}
		assert.Eventually(t, func() bool { return locks.size() == 0 }, time.Second, time.Millisecond)
	})
}
