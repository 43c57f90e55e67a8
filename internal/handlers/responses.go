package handlers

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/diegoclair/morning-club-bot/internal/domain"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

// Sunrise orange for every embed.
const color int = 0xF5A623

// Response is something the bot answers a command with.
type Response interface {
	Send(ctx context.Context, client contract.ChatClient, channelID string) error
}

type textResponse struct {
	content string
}

type embedResponse struct {
	embed *discordgo.MessageEmbed
}

type fileResponse struct {
	name    string
	content []byte
}

func (r textResponse) Send(ctx context.Context, client contract.ChatClient, channelID string) error {
	_, err := client.ChannelMessageSend(channelID, r.content, discordgo.WithContext(ctx))
	return err
}

func (r embedResponse) Send(ctx context.Context, client contract.ChatClient, channelID string) error {
	_, err := client.ChannelMessageSendEmbed(channelID, r.embed, discordgo.WithContext(ctx))
	return err
}

func (r fileResponse) Send(ctx context.Context, client contract.ChatClient, channelID string) error {
	_, err := client.ChannelFileSend(channelID, r.name, bytes.NewReader(r.content), discordgo.WithContext(ctx))
	return err
}

func textf(format string, args ...any) Response {
	return textResponse{content: fmt.Sprintf(format, args...)}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func channelOrUnset(channelID string) string {
	if channelID == "" {
		return "not set"
	}
	return "<#" + channelID + ">"
}

func summaryEmbed(summary *entity.Summary) Response {
	embed := &discordgo.MessageEmbed{Title: "Morning club", Color: color}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Text channel",
		Value:  channelOrUnset(summary.Config.TextChannelID),
		Inline: true,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Voice channel",
		Value:  channelOrUnset(summary.Config.VoiceChannelID),
		Inline: true,
	})

	members := "Nobody yet"
	if len(summary.Members) > 0 {
		lines := make([]string, 0, len(summary.Members))
		for _, m := range summary.Members {
			lines = append(lines, fmt.Sprintf("%s `%s` weekends: %s", domain.Mention(m.ID), m.Window(), yesNo(m.ObserveWeekends)))
		}
		members = strings.Join(lines, "\n")
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("Members (%d)", len(summary.Members)),
		Value:  members,
		Inline: false,
	})

	active := "Nobody"
	if len(summary.Active) > 0 {
		mentions := make([]string, 0, len(summary.Active))
		for _, id := range summary.Active {
			mentions = append(mentions, domain.Mention(id))
		}
		active = strings.Join(mentions, " ")
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("Active (%d)", len(summary.Active)),
		Value:  active,
		Inline: false,
	})

	return embedResponse{embed: embed}
}

func memberEmbed(member *entity.Member) Response {
	embed := &discordgo.MessageEmbed{
		Title:       "Member",
		Description: domain.Mention(member.ID),
		Color:       color,
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Start", Value: member.StartTime.String(), Inline: true},
		&discordgo.MessageEmbedField{Name: "End", Value: member.EndTime.String(), Inline: true},
		&discordgo.MessageEmbedField{Name: "Weekends", Value: yesNo(member.ObserveWeekends), Inline: true},
		&discordgo.MessageEmbedField{Name: "Active", Value: yesNo(member.Active), Inline: true},
	)
	return embedResponse{embed: embed}
}
