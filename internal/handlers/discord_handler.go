package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/discord"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/export"
)

const eventTimeout = 30 * time.Second

type DiscordHandler struct {
	client  contract.ChatClient
	service contract.AttendanceService
	guildID string
	prefix  string
	log     zerolog.Logger
}

func NewDiscord(client contract.ChatClient, service contract.AttendanceService, guildID, prefix string, log zerolog.Logger) *DiscordHandler {
	if prefix == "" {
		prefix = domain.DefaultCommandPrefix
	}
	return &DiscordHandler{
		client:  client,
		service: service,
		guildID: guildID,
		prefix:  prefix,
		log:     log,
	}
}

// OnMessageCreate is registered on the Discord session.
func (h *DiscordHandler) OnMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	h.HandleMessage(ctx, m.Message)
}

// OnVoiceStateUpdate is registered on the Discord session.
func (h *DiscordHandler) OnVoiceStateUpdate(_ *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	h.HandleVoiceStateUpdate(ctx, v)
}

func (h *DiscordHandler) HandleMessage(ctx context.Context, msg *discordgo.Message) {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return
	}
	if h.guildID != "" && msg.GuildID != h.guildID {
		return
	}

	body, ok := strings.CutPrefix(msg.Content, h.prefix)
	if !ok {
		return
	}

	var resp Response
	cmd, err := discord.ParseCommand(body)
	if err != nil {
		resp = textf("%s. Type `%shelp` for the list of commands.", err, h.prefix)
	} else {
		h.log.Debug().Str("command", string(cmd.Type)).Str("author_id", msg.Author.ID).Msg("command received")
		resp = h.handleCommand(ctx, cmd)
	}

	if err := resp.Send(ctx, h.client, msg.ChannelID); err != nil {
		h.log.Error().Err(err).Str("channel_id", msg.ChannelID).Msg("failed to answer command")
	}
}

// HandleVoiceStateUpdate records a check-in when a member joins a voice channel.
// Mute, deafen and stream changes inside the same channel are ignored.
func (h *DiscordHandler) HandleVoiceStateUpdate(ctx context.Context, v *discordgo.VoiceStateUpdate) {
	if v == nil || v.VoiceState == nil || v.ChannelID == "" {
		return
	}
	if h.guildID != "" && v.GuildID != h.guildID {
		return
	}
	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return
	}
	if v.BeforeUpdate != nil && v.BeforeUpdate.ChannelID == v.ChannelID {
		return
	}

	if err := h.service.RecordPresence(ctx, v.UserID, v.ChannelID); err != nil {
		h.log.Error().Err(err).Str("member_id", v.UserID).Msg("failed to record presence")
	}
}

func (h *DiscordHandler) handleCommand(ctx context.Context, cmd *discord.Command) Response {
	switch cmd.Type {
	case discord.CmdAdd:
		return h.handleAdd(ctx, cmd)
	case discord.CmdUpdate:
		return h.handleUpdate(ctx, cmd)
	case discord.CmdRemove:
		return h.forEachMember(ctx, cmd, "remove", h.service.RemoveMember, "%s left the club ;(")
	case discord.CmdActivate:
		return h.forEachMember(ctx, cmd, "activate", h.service.Activate, "%s is now active, rise and shine!")
	case discord.CmdDeactivate:
		return h.forEachMember(ctx, cmd, "deactivate", h.service.Deactivate, "%s is now inactive")
	case discord.CmdInfo:
		return h.handleInfo(ctx, cmd)
	case discord.CmdSetTextChannel:
		return h.handleSetChannel(ctx, cmd, "text", h.service.SetTextChannel, discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews)
	case discord.CmdSetVoiceChannel:
		return h.handleSetChannel(ctx, cmd, "voice", h.service.SetVoiceChannel, discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice)
	case discord.CmdExport:
		return h.handleExport(ctx)
	default:
		return textResponse{content: discord.GetHelpText(h.prefix)}
	}
}

func (h *DiscordHandler) handleAdd(ctx context.Context, cmd *discord.Command) Response {
	args, err := discord.ParseMemberArgs(cmd.Args)
	if err != nil {
		return h.usage(err, "add @member HH:MM:SS HH:MM:SS [weekends]")
	}

	if err := h.service.AddMember(ctx, args.MemberID, args.Window, args.ObserveWeekends); err != nil {
		return h.failure(args.MemberID, err)
	}

	return textf("%s welcome to the club! Window `%s`, weekends: %s",
		domain.Mention(args.MemberID), args.Window, yesNo(args.ObserveWeekends))
}

func (h *DiscordHandler) handleUpdate(ctx context.Context, cmd *discord.Command) Response {
	args, err := discord.ParseMemberArgs(cmd.Args)
	if err != nil {
		return h.usage(err, "update @member HH:MM:SS HH:MM:SS [weekends]")
	}

	if err := h.service.UpdateMember(ctx, args.MemberID, args.Window, args.ObserveWeekends); err != nil {
		return h.failure(args.MemberID, err)
	}

	return textf("%s window updated to `%s`, weekends: %s",
		domain.Mention(args.MemberID), args.Window, yesNo(args.ObserveWeekends))
}

// forEachMember applies op to every mentioned member and reports one line per member.
func (h *DiscordHandler) forEachMember(ctx context.Context, cmd *discord.Command, name string, op func(context.Context, string) error, success string) Response {
	ids, err := discord.ParseMentions(cmd.Args)
	if err != nil {
		return h.usage(err, name+" @member...")
	}

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := op(ctx, id); err != nil {
			lines = append(lines, h.failureText(id, err))
			continue
		}
		lines = append(lines, fmt.Sprintf(success, domain.Mention(id)))
	}
	return textResponse{content: strings.Join(lines, "\n")}
}

func (h *DiscordHandler) handleInfo(ctx context.Context, cmd *discord.Command) Response {
	if len(cmd.Args) > 0 {
		memberID, err := discord.ParseMention(cmd.Args[0])
		if err != nil {
			return h.usage(err, "info [@member]")
		}

		member, err := h.service.MemberInfo(ctx, memberID)
		if err != nil {
			return h.failure(memberID, err)
		}
		return memberEmbed(member)
	}

	summary, err := h.service.Info(ctx)
	if err != nil {
		return h.failure("", err)
	}
	return summaryEmbed(summary)
}

func (h *DiscordHandler) handleSetChannel(ctx context.Context, cmd *discord.Command, kind string, set func(context.Context, string) error, allowed ...discordgo.ChannelType) Response {
	if len(cmd.Args) != 1 {
		return h.usage(discord.ErrMissingArgs, fmt.Sprintf("set_%s_channel #channel", kind))
	}

	channelID, err := discord.ParseChannel(cmd.Args[0])
	if err != nil {
		return h.usage(err, fmt.Sprintf("set_%s_channel #channel", kind))
	}

	channel, err := h.client.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		h.log.Warn().Err(err).Str("channel_id", channelID).Msg("failed to resolve channel")
		return textf("I can't find channel %s", channelOrUnset(channelID))
	}
	if h.guildID != "" && channel.GuildID != h.guildID {
		return textf("%s is not in this server", channelOrUnset(channelID))
	}
	if !isChannelType(channel.Type, allowed) {
		return textf("%s is not a %s channel", channelOrUnset(channelID), kind)
	}

	if err := set(ctx, channelID); err != nil {
		return h.failure("", err)
	}
	return textf("%s channel set to %s", strings.ToUpper(kind[:1])+kind[1:], channelOrUnset(channelID))
}

func (h *DiscordHandler) handleExport(ctx context.Context) Response {
	records, err := h.service.ExportAttendance(ctx)
	if err != nil {
		return h.failure("", err)
	}

	data, err := export.CSV(records)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to render export")
		return textResponse{content: "Could not build the export"}
	}
	return fileResponse{name: export.FileName, content: data}
}

func (h *DiscordHandler) usage(err error, syntax string) Response {
	return textf("%s. Usage: `%s%s`", err, h.prefix, syntax)
}

func (h *DiscordHandler) failure(memberID string, err error) Response {
	return textResponse{content: h.failureText(memberID, err)}
}

func (h *DiscordHandler) failureText(memberID string, err error) string {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		h.log.Error().Err(err).Str("member_id", memberID).Msg("command failed")
		return "Something went wrong with the database, please try again later"
	}

	if memberID == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s: %s", domain.Mention(memberID), err)
}

func isChannelType(t discordgo.ChannelType, allowed []discordgo.ChannelType) bool {
	for _, a := range allowed {
		if t == a {
			return true
		}
	}
	return false
}
