package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/morning-club-bot/internal/clock"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/metrics"
)

// Options carries the collaborators shared by the services.
// A nil Clock means the system clock in UTC, a zero Retry means the default policy.
type Options struct {
	Clock   clock.Clock
	Metrics *metrics.Metrics
	Logger  zerolog.Logger
	Retry   RetryPolicy
}

type Services struct {
	Attendance *attendanceService
	Scheduler  *scheduler
}

func New(dm contract.DataManager, notifier contract.Notifier, opts Options) *Services {
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem(time.UTC)
	}
	if opts.Retry.Attempts <= 0 {
		opts.Retry = defaultRetryPolicy
	}

	scheduler := newScheduler(dm, notifier, opts)

	return &Services{
		Attendance: newAttendance(dm, notifier, scheduler, opts),
		Scheduler:  scheduler,
	}
}
