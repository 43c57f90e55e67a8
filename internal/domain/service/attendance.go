package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/diegoclair/morning-club-bot/internal/clock"
	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
	"github.com/diegoclair/morning-club-bot/internal/metrics"
)

var _ contract.AttendanceService = (*attendanceService)(nil)

type attendanceService struct {
	dm        contract.DataManager
	notifier  contract.Notifier
	scheduler *scheduler
	clock     clock.Clock
	metrics   *metrics.Metrics
	log       zerolog.Logger

	// held by every command that reads a member and then changes it, so the
	// active column and the scheduler move together
	locks memberLocks
}

func newAttendance(dm contract.DataManager, notifier contract.Notifier, scheduler *scheduler, opts Options) *attendanceService {
	return &attendanceService{
		dm:        dm,
		notifier:  notifier,
		scheduler: scheduler,
		clock:     opts.Clock,
		metrics:   opts.Metrics,
		log:       opts.Logger,
	}
}

// Start resumes the cycle of every member persisted as active.
func (s *attendanceService) Start(ctx context.Context) error {
	members, err := s.dm.Member().ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active members: %w", err)
	}

	for _, member := range members {
		if err := s.scheduler.start(*member); err != nil && !errors.Is(err, domain.ErrAlreadyActive) {
			return fmt.Errorf("failed to resume member %s: %w", member.ID, err)
		}
	}

	s.log.Info().Int("resumed", len(members)).Msg("scheduler started")
	return nil
}

// Shutdown stops every cycle. Members stay active in the store.
func (s *attendanceService) Shutdown() {
	s.scheduler.shutdown()
}

func (s *attendanceService) AddMember(ctx context.Context, memberID string, window domain.Window, observeWeekends bool) error {
	if err := window.Validate(); err != nil {
		return err
	}

	defer s.locks.lock(memberID)()

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Member().Get(ctx, memberID)
		if err != nil {
			return fmt.Errorf("failed to check existing member: %w", err)
		}
		if existing != nil {
			return domain.ErrAlreadyMember
		}

		return tx.Member().Create(ctx, &entity.Member{
			ID:              memberID,
			StartTime:       window.Start,
			EndTime:         window.End,
			ObserveWeekends: observeWeekends,
		})
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("member_id", memberID).Str("window", window.String()).Msg("member added")
	return nil
}

func (s *attendanceService) RemoveMember(ctx context.Context, memberID string) error {
	defer s.locks.lock(memberID)()

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		member, err := tx.Member().Get(ctx, memberID)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.ErrNotAMember
		}
		if member.Active || s.scheduler.isActive(memberID) {
			return domain.ErrMustDeactivateFirst
		}

		if err := tx.Attendance().DeleteByMember(ctx, memberID); err != nil {
			return err
		}
		return tx.Member().Delete(ctx, memberID)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("member_id", memberID).Msg("member removed")
	return nil
}

func (s *attendanceService) UpdateMember(ctx context.Context, memberID string, window domain.Window, observeWeekends bool) error {
	if err := window.Validate(); err != nil {
		return err
	}

	defer s.locks.lock(memberID)()

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		member, err := tx.Member().Get(ctx, memberID)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.ErrNotAMember
		}
		if member.Active || s.scheduler.isActive(memberID) {
			return domain.ErrMustDeactivateFirst
		}

		member.StartTime = window.Start
		member.EndTime = window.End
		member.ObserveWeekends = observeWeekends
		return tx.Member().Update(ctx, member)
	})
}

func (s *attendanceService) Activate(ctx context.Context, memberID string) error {
	defer s.locks.lock(memberID)()

	member, err := s.dm.Member().Get(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return domain.ErrNotAMember
	}

	member.Active = true
	if err := s.scheduler.start(*member); err != nil {
		return err
	}

	if err := s.dm.Member().SetActive(ctx, memberID, true); err != nil {
		s.scheduler.stop(memberID)
		if errors.Is(err, domain.ErrNotAMember) {
			return err
		}
		return fmt.Errorf("failed to activate member: %w", err)
	}

	s.log.Info().Str("member_id", memberID).Msg("member activated")
	return nil
}

func (s *attendanceService) Deactivate(ctx context.Context, memberID string) error {
	defer s.locks.lock(memberID)()

	member, err := s.dm.Member().Get(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return domain.ErrNotAMember
	}

	snapshot, ok := s.scheduler.stop(memberID)
	if !ok {
		return domain.ErrAlreadyInactive
	}

	if err := s.dm.Member().SetActive(ctx, memberID, false); err != nil {
		if errors.Is(err, domain.ErrNotAMember) {
			return err
		}
		if restartErr := s.scheduler.start(snapshot); restartErr != nil {
			s.log.Error().Err(restartErr).Str("member_id", memberID).Msg("failed to restart member cycle")
		}
		return fmt.Errorf("failed to deactivate member: %w", err)
	}

	s.log.Info().Str("member_id", memberID).Msg("member deactivated")
	return nil
}

func (s *attendanceService) Info(ctx context.Context) (*entity.Summary, error) {
	cfg, err := s.dm.Config().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	members, err := s.dm.Member().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &entity.Summary{
		Config:  *cfg,
		Members: members,
		Active:  s.scheduler.activeIDs(),
	}, nil
}

func (s *attendanceService) MemberInfo(ctx context.Context, memberID string) (*entity.Member, error) {
	member, err := s.dm.Member().Get(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, domain.ErrNotAMember
	}
	return member, nil
}

func (s *attendanceService) SetTextChannel(ctx context.Context, channelID string) error {
	if err := s.dm.Config().SetTextChannel(ctx, channelID); err != nil {
		return fmt.Errorf("failed to set text channel: %w", err)
	}
	s.log.Info().Str("channel_id", channelID).Msg("text channel set")
	return nil
}

func (s *attendanceService) SetVoiceChannel(ctx context.Context, channelID string) error {
	if err := s.dm.Config().SetVoiceChannel(ctx, channelID); err != nil {
		return fmt.Errorf("failed to set voice channel: %w", err)
	}
	s.log.Info().Str("channel_id", channelID).Msg("voice channel set")
	return nil
}

// RecordPresence checks memberID in when they join the voice channel inside
// their window. Joins that do not count are ignored without error.
func (s *attendanceService) RecordPresence(ctx context.Context, memberID, channelID string) error {
	cfg, err := s.dm.Config().Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}
	if cfg.VoiceChannelID == "" || channelID != cfg.VoiceChannelID {
		return nil
	}

	member, ok := s.scheduler.snapshot(memberID)
	if !ok {
		return nil
	}

	now := s.clock.Now()
	window := member.Window()
	if !window.Contains(now) {
		return nil
	}

	attendanceDay := window.AttendanceDay(now)
	if !domain.ObservesDay(attendanceDay, member.ObserveWeekends) {
		return nil
	}
	day := domain.FormatDay(attendanceDay)

	var applied bool
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if _, err := tx.Attendance().GetOrCreate(ctx, memberID, day); err != nil {
			return err
		}

		var err error
		applied, err = tx.Attendance().MarkWokeUp(ctx, memberID, day)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to record presence: %w", err)
	}

	log := s.log.With().Str("member_id", memberID).Str("day", day).Logger()
	if !applied {
		log.Debug().Msg("presence already settled")
		return nil
	}

	notify(ctx, log, s.notifier, s.metrics, metrics.KindGoodMorning, domain.GoodMorningMessage(memberID))
	return nil
}

func (s *attendanceService) ExportAttendance(ctx context.Context) ([]*entity.Attendance, error) {
	records, err := s.dm.Attendance().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}
