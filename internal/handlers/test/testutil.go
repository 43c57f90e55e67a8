package test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/morning-club-bot/internal/handlers"
	"github.com/diegoclair/morning-club-bot/mocks"
)

const (
	GuildID   = "900000000000000001"
	ChannelID = "900000000000000002"
	AuthorID  = "900000000000000003"
	Prefix    = "!"
)

type ServiceMocks struct {
	AttendanceServiceMock *mocks.MockAttendanceService
	ChatClientMock        *mocks.MockChatClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.DiscordHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		AttendanceServiceMock: mocks.NewMockAttendanceService(ctrl),
		ChatClientMock:        mocks.NewMockChatClient(ctrl),
	}

	handler = handlers.NewDiscord(m.ChatClientMock, m.AttendanceServiceMock, GuildID, Prefix, zerolog.Nop())

	return
}

// CreateMessage builds a guild message sent by a human member.
func CreateMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        "900000000000000004",
		ChannelID: ChannelID,
		GuildID:   GuildID,
		Content:   content,
		Author:    &discordgo.User{ID: AuthorID, Username: "test-user"},
	}
}

// CreateVoiceUpdate builds a voice state change for userID moving from before to after.
func CreateVoiceUpdate(userID, before, after string) *discordgo.VoiceStateUpdate {
	v := &discordgo.VoiceStateUpdate{
		VoiceState: &discordgo.VoiceState{
			GuildID:   GuildID,
			ChannelID: after,
			UserID:    userID,
			Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
	if before != "" {
		v.BeforeUpdate = &discordgo.VoiceState{GuildID: GuildID, ChannelID: before, UserID: userID}
	}
	return v
}
