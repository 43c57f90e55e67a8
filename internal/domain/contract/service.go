package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"

	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

type AttendanceService interface {
	AddMember(ctx context.Context, memberID string, window domain.Window, observeWeekends bool) error
	RemoveMember(ctx context.Context, memberID string) error
	UpdateMember(ctx context.Context, memberID string, window domain.Window, observeWeekends bool) error
	Activate(ctx context.Context, memberID string) error
	Deactivate(ctx context.Context, memberID string) error
	Info(ctx context.Context) (*entity.Summary, error)
	MemberInfo(ctx context.Context, memberID string) (*entity.Member, error)
	SetTextChannel(ctx context.Context, channelID string) error
	SetVoiceChannel(ctx context.Context, channelID string) error
	RecordPresence(ctx context.Context, memberID, channelID string) error
	ExportAttendance(ctx context.Context) ([]*entity.Attendance, error)
}

// Notifier posts a message to the shared text channel
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
