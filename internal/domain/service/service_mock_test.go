package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/morning-club-bot/internal/clock"
	"github.com/diegoclair/morning-club-bot/internal/database"
	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
	"github.com/diegoclair/morning-club-bot/mocks"
)

const voiceChannelID = "V100"

// 2026-10-14 is a Wednesday.
var wednesday = time.Date(2026, 10, 14, 5, 0, 0, 0, time.UTC)

var testRetry = RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond}

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockMemberRepo     *mocks.MockMemberRepo
	mockAttendanceRepo *mocks.MockAttendanceRepo
	mockConfigRepo     *mocks.MockConfigRepo
	mockNotifier       *mocks.MockNotifier
}

// newServiceTestMock wires the services on top of gomock repositories.
// WithTransaction runs the callback against the same mocked DataManager.
func newServiceTestMock(t *testing.T, clk clock.Clock) (m allMocks, svc *Services, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	attendanceRepo := mocks.NewMockAttendanceRepo(ctrl)
	dm.EXPECT().Attendance().Return(attendanceRepo).AnyTimes()

	configRepo := mocks.NewMockConfigRepo(ctrl)
	dm.EXPECT().Config().Return(configRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	notifier := mocks.NewMockNotifier(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockMemberRepo:     memberRepo,
		mockAttendanceRepo: attendanceRepo,
		mockConfigRepo:     configRepo,
		mockNotifier:       notifier,
	}

	svc = New(dm, notifier, Options{Clock: clk, Logger: zerolog.Nop(), Retry: testRetry})
	require.NotNil(t, svc)
	t.Cleanup(svc.Attendance.Shutdown)

	return
}

// clubFixture runs the services on a real in-memory store and a fake clock.
type clubFixture struct {
	svc      *Services
	dm       contract.DataManager
	clock    *clock.Fake
	notifier *mocks.MockNotifier
}

func newClubFixture(t *testing.T, now time.Time) *clubFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	ctrl := gomock.NewController(t)
	f := &clubFixture{
		dm:       database.NewInstance(db),
		clock:    clock.NewFake(now),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	f.svc = New(f.dm, f.notifier, Options{Clock: f.clock, Logger: zerolog.Nop(), Retry: testRetry})
	t.Cleanup(f.svc.Attendance.Shutdown)

	require.NoError(t, f.dm.Config().SetVoiceChannel(context.Background(), voiceChannelID))
	return f
}

// addActive adds a member with the given window and starts its cycle.
func (f *clubFixture) addActive(t *testing.T, memberID, start, end string, weekends bool) {
	t.Helper()

	window, err := domain.ParseWindow(start, end)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, f.svc.Attendance.AddMember(ctx, memberID, window, weekends))
	require.NoError(t, f.svc.Attendance.Activate(ctx, memberID))
}

func (f *clubFixture) records(t *testing.T, memberID string) []*entity.Attendance {
	t.Helper()

	records, err := f.dm.Attendance().ListByMember(context.Background(), memberID)
	require.NoError(t, err)
	return records
}
