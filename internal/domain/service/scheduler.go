package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/diegoclair/morning-club-bot/internal/clock"
	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
	"github.com/diegoclair/morning-club-bot/internal/metrics"
)

const sendTimeout = 10 * time.Second

// handle is the running schedule of one active member.
type handle struct {
	id     uuid.UUID
	member entity.Member
	cancel context.CancelFunc
	done   chan struct{}
}

// scheduler keeps one goroutine per active member. Each goroutine sleeps until
// the end of the member's window and closes the day if nobody showed up.
type scheduler struct {
	dm       contract.DataManager
	notifier contract.Notifier
	clock    clock.Clock
	metrics  *metrics.Metrics
	log      zerolog.Logger
	retry    RetryPolicy

	mu      sync.Mutex
	handles map[string]*handle
}

func newScheduler(dm contract.DataManager, notifier contract.Notifier, opts Options) *scheduler {
	return &scheduler{
		dm:       dm,
		notifier: notifier,
		clock:    opts.Clock,
		metrics:  opts.Metrics,
		log:      opts.Logger,
		retry:    opts.Retry,
		handles:  make(map[string]*handle),
	}
}

// start registers a handle for member and launches its cycle anchored at now.
func (s *scheduler) start(member entity.Member) error {
	s.mu.Lock()
	if _, ok := s.handles[member.ID]; ok {
		s.mu.Unlock()
		return domain.ErrAlreadyActive
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &handle{
		id:     uuid.New(),
		member: member,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.handles[member.ID] = h
	active := len(s.handles)
	s.mu.Unlock()

	s.metrics.SetActiveMembers(active)
	go s.run(ctx, h, s.clock.Now())
	return nil
}

// stop removes the member's handle and waits for its goroutine to exit.
// It returns the snapshot the cycle was running with.
func (s *scheduler) stop(memberID string) (entity.Member, bool) {
	s.mu.Lock()
	h, ok := s.handles[memberID]
	if ok {
		delete(s.handles, memberID)
	}
	active := len(s.handles)
	s.mu.Unlock()

	if !ok {
		return entity.Member{}, false
	}

	h.cancel()
	<-h.done
	s.metrics.SetActiveMembers(active)
	return h.member, true
}

// shutdown stops every cycle without touching the store.
func (s *scheduler) shutdown() {
	s.mu.Lock()
	handles := make([]*handle, 0, len(s.handles))
	for id, h := range s.handles {
		handles = append(handles, h)
		delete(s.handles, id)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.cancel()
	}
	for _, h := range handles {
		<-h.done
	}
	s.metrics.SetActiveMembers(0)
	s.log.Info().Int("stopped", len(handles)).Msg("scheduler stopped")
}

func (s *scheduler) snapshot(memberID string) (entity.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.handles[memberID]
	if !ok {
		return entity.Member{}, false
	}
	return h.member, true
}

func (s *scheduler) isActive(memberID string) bool {
	_, ok := s.snapshot(memberID)
	return ok
}

// activeIDs returns the ids of the running cycles, sorted.
func (s *scheduler) activeIDs() []string {
	s.mu.Lock()
	ids := make([]string, 0, len(s.handles))
	for id := range s.handles {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	sort.Strings(ids)
	return ids
}

func (s *scheduler) run(ctx context.Context, h *handle, anchor time.Time) {
	defer close(h.done)

	log := s.log.With().
		Str("member_id", h.member.ID).
		Str("handle_id", h.id.String()).
		Logger()
	window := h.member.Window()

	log.Debug().Str("window", window.String()).Msg("cycle started")
	for {
		target := window.NextEnd(anchor)
		log.Debug().Time("target", target).Msg("waiting for window end")

		if err := s.clock.SleepUntil(ctx, target); err != nil {
			log.Debug().Msg("cycle stopped")
			return
		}

		s.closeDay(ctx, log, h.member, target)
		anchor = target
	}
}

// closeDay marks the day ending at target as notified and posts the missed
// message when the member did not check in.
func (s *scheduler) closeDay(ctx context.Context, log zerolog.Logger, member entity.Member, target time.Time) {
	day := domain.FormatDay(target)
	log = log.With().Str("day", day).Logger()

	if !domain.ObservesDay(target, member.ObserveWeekends) {
		log.Debug().Msg("day not observed")
		return
	}

	var applied, wokeUp bool
	err := s.retry.do(ctx, func() error {
		return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if _, err := tx.Attendance().GetOrCreate(ctx, member.ID, day); err != nil {
				return err
			}

			var err error
			applied, wokeUp, err = tx.Attendance().MarkNotified(ctx, member.ID, day)
			return err
		})
	}, func(attempt int, err error) {
		s.metrics.StoreRetry()
		log.Warn().Err(err).Int("attempt", attempt).Msg("failed to close day, retrying")
	})
	if err != nil {
		if ctx.Err() == nil {
			log.Error().Err(err).Msg("giving up on day")
		}
		return
	}

	if !applied || wokeUp {
		log.Debug().Bool("woke_up", wokeUp).Msg("day closed")
		return
	}

	notify(ctx, log, s.notifier, s.metrics, metrics.KindMissed, domain.MissedMessage(member.ID))
}

// notify posts text and records the outcome. A send that started is not
// interrupted by the caller's cancellation.
func notify(ctx context.Context, log zerolog.Logger, n contract.Notifier, m *metrics.Metrics, kind, text string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := n.Notify(ctx, text); err != nil {
		m.NotificationFailed(kind)
		log.Error().Err(err).Str("kind", kind).Msg("failed to send notification")
		return
	}
	m.NotificationSent(kind)
	log.Info().Str("kind", kind).Msg("notification sent")
}
