// Package notifier delivers club messages to chat channels.
package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
)

// ErrNoTextChannel is returned when no text channel has been configured yet.
var ErrNoTextChannel = errors.New("text channel is not configured")

// Discord posts to the configured text channel. The channel is read on every
// call so that set_text_channel takes effect immediately.
type Discord struct {
	client contract.ChatClient
	config contract.ConfigRepo
}

func NewDiscord(client contract.ChatClient, config contract.ConfigRepo) *Discord {
	return &Discord{client: client, config: config}
}

func (d *Discord) Notify(ctx context.Context, text string) error {
	cfg, err := d.config.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}
	if cfg.TextChannelID == "" {
		return ErrNoTextChannel
	}

	if _, err := d.client.ChannelMessageSend(cfg.TextChannelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send Discord message: %w", err)
	}
	return nil
}
