package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"

	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Member() MemberRepo
	Attendance() AttendanceRepo
	Config() ConfigRepo
}

// MemberRepo defines the contract for member repository.
// Get returns nil, nil when the member does not exist.
type MemberRepo interface {
	Create(ctx context.Context, member *entity.Member) error
	Get(ctx context.Context, memberID string) (*entity.Member, error)
	Update(ctx context.Context, member *entity.Member) error
	SetActive(ctx context.Context, memberID string, active bool) error
	Delete(ctx context.Context, memberID string) error
	List(ctx context.Context) ([]*entity.Member, error)
	ListActive(ctx context.Context) ([]*entity.Member, error)
}

// AttendanceRepo defines the contract for daily attendance records.
// The Mark* methods are compare-and-set updates reporting whether they applied.
type AttendanceRepo interface {
	GetOrCreate(ctx context.Context, memberID, day string) (*entity.Attendance, error)
	MarkWokeUp(ctx context.Context, memberID, day string) (bool, error)
	MarkNotified(ctx context.Context, memberID, day string) (applied bool, wokeUp bool, err error)
	DeleteByMember(ctx context.Context, memberID string) error
	ListByMember(ctx context.Context, memberID string) ([]*entity.Attendance, error)
	List(ctx context.Context) ([]*entity.Attendance, error)
}

// ConfigRepo defines the contract for the singleton bot configuration
type ConfigRepo interface {
	Get(ctx context.Context) (*entity.Config, error)
	SetTextChannel(ctx context.Context, channelID string) error
	SetVoiceChannel(ctx context.Context, channelID string) error
}
