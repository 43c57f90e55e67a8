package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/morning-club-bot/internal/clock"
	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

func mustWindow(t *testing.T, start, end string) domain.Window {
	t.Helper()
	w, err := domain.ParseWindow(start, end)
	require.NoError(t, err)
	return w
}

func Test_attendanceService_AddMember(t *testing.T) {
	type args struct {
		memberID        string
		window          domain.Window
		observeWeekends bool
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		wantErr   error
	}{
		{
			name: "Should add member successfully",
			args: args{
				memberID:        "111",
				window:          mustWindow(t, "06:00", "07:00"),
				observeWeekends: true,
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMemberRepo.EXPECT().
					Get(gomock.Any(), args.memberID).
					Return(nil, nil).Times(1)

				mocks.mockMemberRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, member *entity.Member) error {
						require.Equal(t, args.memberID, member.ID)
						require.Equal(t, args.window.Start, member.StartTime)
						require.Equal(t, args.window.End, member.EndTime)
						require.True(t, member.ObserveWeekends)
						require.False(t, member.Active)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should return error when member already exists",
			args: args{
				memberID: "111",
				window:   mustWindow(t, "06:00", "07:00"),
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMemberRepo.EXPECT().
					Get(gomock.Any(), args.memberID).
					Return(&entity.Member{ID: args.memberID}, nil).Times(1)
			},
			wantErr: domain.ErrAlreadyMember,
		},
		{
			name: "Should reject a window with equal start and end",
			args: args{
				memberID: "111",
				window:   domain.Window{Start: domain.NewTimeOfDay(6, 0, 0), End: domain.NewTimeOfDay(6, 0, 0)},
			},
			wantErr: domain.ErrInvalidWindow,
		},
		{
			name: "Should return error when the store fails",
			args: args{
				memberID: "111",
				window:   mustWindow(t, "06:00", "07:00"),
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMemberRepo.EXPECT().
					Get(gomock.Any(), args.memberID).
					Return(nil, domain.ErrStoreUnavailable).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			err := svc.Attendance.AddMember(context.Background(), tt.args.memberID, tt.args.window, tt.args.observeWeekends)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_attendanceService_Activate(t *testing.T) {
	member := &entity.Member{
		ID:        "111",
		StartTime: domain.NewTimeOfDay(6, 0, 0),
		EndTime:   domain.NewTimeOfDay(7, 0, 0),
	}

	t.Run("Should return error when not a member", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
		defer ctrl.Finish()

		m.mockMemberRepo.EXPECT().Get(gomock.Any(), "111").Return(nil, nil)

		err := svc.Attendance.Activate(context.Background(), "111")
		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("Should roll back the handle when persisting fails", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
		defer ctrl.Finish()

		copied := *member
		m.mockMemberRepo.EXPECT().Get(gomock.Any(), "111").Return(&copied, nil)
		m.mockMemberRepo.EXPECT().SetActive(gomock.Any(), "111", true).Return(domain.ErrStoreUnavailable)

		err := svc.Attendance.Activate(context.Background(), "111")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.False(t, svc.Scheduler.isActive("111"))
	})

	t.Run("Should return error when already active", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
		defer ctrl.Finish()

		m.mockMemberRepo.EXPECT().Get(gomock.Any(), "111").DoAndReturn(
			func(ctx context.Context, memberID string) (*entity.Member, error) {
				copied := *member
				return &copied, nil
			}).Times(2)
		m.mockMemberRepo.EXPECT().SetActive(gomock.Any(), "111", true).Return(nil).Times(1)

		require.NoError(t, svc.Attendance.Activate(context.Background(), "111"))
		err := svc.Attendance.Activate(context.Background(), "111")
		assert.ErrorIs(t, err, domain.ErrAlreadyActive)
	})
}

func Test_attendanceService_Deactivate(t *testing.T) {
	t.Run("Should return error when not a member", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
		defer ctrl.Finish()

		m.mockMemberRepo.EXPECT().Get(gomock.Any(), "111").Return(nil, nil)

		err := svc.Attendance.Deactivate(context.Background(), "111")
		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("Should return error when already inactive", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
		defer ctrl.Finish()

		m.mockMemberRepo.EXPECT().Get(gomock.Any(), "111").Return(&entity.Member{ID: "111"}, nil)

		err := svc.Attendance.Deactivate(context.Background(), "111")
		assert.ErrorIs(t, err, domain.ErrAlreadyInactive)
	})

	t.Run("Should restart the cycle when persisting fails", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(wednesday))
		defer ctrl.Finish()

		member := entity.Member{
			ID:        "111",
			StartTime: domain.NewTimeOfDay(6, 0, 0),
			EndTime:   domain.NewTimeOfDay(7, 0, 0),
			Active:    true,
		}
		require.NoError(t, svc.Scheduler.start(member))

		m.mockMemberRepo.EXPECT().Get(gomock.Any(), "111").Return(&member, nil)
		m.mockMemberRepo.EXPECT().SetActive(gomock.Any(), "111", false).Return(domain.ErrStoreUnavailable)

		err := svc.Attendance.Deactivate(context.Background(), "111")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.True(t, svc.Scheduler.isActive("111"))
	})
}

func Test_attendanceService_RecordPresence(t *testing.T) {
	member := entity.Member{
		ID:        "111",
		StartTime: domain.NewTimeOfDay(6, 0, 0),
		EndTime:   domain.NewTimeOfDay(7, 0, 0),
		Active:    true,
	}

	t.Run("Should ignore other voice channels", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(at(wednesday, 6, 30)))
		defer ctrl.Finish()
		require.NoError(t, svc.Scheduler.start(member))

		m.mockConfigRepo.EXPECT().Get(gomock.Any()).Return(&entity.Config{VoiceChannelID: voiceChannelID}, nil)

		assert.NoError(t, svc.Attendance.RecordPresence(context.Background(), "111", "other"))
	})

	t.Run("Should ignore inactive members", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(at(wednesday, 6, 30)))
		defer ctrl.Finish()

		m.mockConfigRepo.EXPECT().Get(gomock.Any()).Return(&entity.Config{VoiceChannelID: voiceChannelID}, nil)

		assert.NoError(t, svc.Attendance.RecordPresence(context.Background(), "111", voiceChannelID))
	})

	t.Run("Should ignore joins outside the window", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(at(wednesday, 5, 59)))
		defer ctrl.Finish()
		require.NoError(t, svc.Scheduler.start(member))

		m.mockConfigRepo.EXPECT().Get(gomock.Any()).Return(&entity.Config{VoiceChannelID: voiceChannelID}, nil)

		assert.NoError(t, svc.Attendance.RecordPresence(context.Background(), "111", voiceChannelID))
	})

	t.Run("Should report store failures", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t, clock.NewFake(at(wednesday, 6, 30)))
		defer ctrl.Finish()
		require.NoError(t, svc.Scheduler.start(member))

		m.mockConfigRepo.EXPECT().Get(gomock.Any()).Return(&entity.Config{VoiceChannelID: voiceChannelID}, nil)
		m.mockAttendanceRepo.EXPECT().
			GetOrCreate(gomock.Any(), "111", "2026-10-14").
			Return(nil, domain.ErrStoreUnavailable)

		err := svc.Attendance.RecordPresence(context.Background(), "111", voiceChannelID)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func Test_attendanceService_memberLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("remove requires deactivation", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		f.addActive(t, "111", "06:00:00", "07:00:00", false)

		err := f.svc.Attendance.RemoveMember(ctx, "111")
		assert.ErrorIs(t, err, domain.ErrMustDeactivateFirst)

		require.NoError(t, f.svc.Attendance.Deactivate(ctx, "111"))
		require.NoError(t, f.svc.Attendance.RemoveMember(ctx, "111"))

		_, err = f.svc.Attendance.MemberInfo(ctx, "111")
		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("remove of an absent member", func(t *testing.T) {
		f := newClubFixture(t, wednesday)

		err := f.svc.Attendance.RemoveMember(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("update requires deactivation", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		f.addActive(t, "111", "06:00:00", "07:00:00", false)

		err := f.svc.Attendance.UpdateMember(ctx, "111", mustWindow(t, "05:00", "06:00"), false)
		assert.ErrorIs(t, err, domain.ErrMustDeactivateFirst)
	})

	t.Run("update then info round trip", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		window := mustWindow(t, "06:00:00", "07:00:00")
		require.NoError(t, f.svc.Attendance.AddMember(ctx, "111", window, false))

		updated := mustWindow(t, "22:15:30", "06:45:00")
		require.NoError(t, f.svc.Attendance.UpdateMember(ctx, "111", updated, true))

		member, err := f.svc.Attendance.MemberInfo(ctx, "111")
		require.NoError(t, err)
		assert.Equal(t, "22:15:30", member.StartTime.String())
		assert.Equal(t, "06:45:00", member.EndTime.String())
		assert.True(t, member.ObserveWeekends)
	})

	t.Run("update of an absent member", func(t *testing.T) {
		f := newClubFixture(t, wednesday)

		err := f.svc.Attendance.UpdateMember(ctx, "nobody", mustWindow(t, "06:00", "07:00"), false)
		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("add activate deactivate leaves no notified record", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		f.addActive(t, "111", "06:00:00", "07:00:00", false)
		f.clock.BlockUntilSleepers(1)
		require.NoError(t, f.svc.Attendance.Deactivate(ctx, "111"))

		for _, record := range f.records(t, "111") {
			assert.False(t, record.Notified)
		}
	})

	t.Run("info lists channels members and active ids", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		require.NoError(t, f.svc.Attendance.SetTextChannel(ctx, "T1"))
		f.addActive(t, "111", "06:00:00", "07:00:00", false)
		require.NoError(t, f.svc.Attendance.AddMember(ctx, "222", mustWindow(t, "08:00", "09:00"), true))

		summary, err := f.svc.Attendance.Info(ctx)
		require.NoError(t, err)
		assert.Equal(t, "T1", summary.Config.TextChannelID)
		assert.Equal(t, voiceChannelID, summary.Config.VoiceChannelID)
		assert.Len(t, summary.Members, 2)
		assert.Equal(t, []string{"111"}, summary.Active)
	})

	t.Run("export returns every record", func(t *testing.T) {
		f := newClubFixture(t, wednesday)
		f.addActive(t, "111", "06:00:00", "07:00:00", false)
		f.clock.BlockUntilSleepers(1)

		f.notifier.EXPECT().Notify(gomock.Any(), domain.MissedMessage("111")).Return(nil)
		f.clock.Set(at(wednesday, 7, 0))
		f.clock.BlockUntilSleepers(1)

		records, err := f.svc.Attendance.ExportAttendance(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "2026-10-14", records[0].Day)
	})
}
