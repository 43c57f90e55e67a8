package contract

//go:generate mockgen -source=discord.go -destination=../../../mocks/discord.go -package=mocks

import (
	"io"

	"github.com/bwmarrin/discordgo"
)

// ChatClient defines the subset of the Discord session the bot uses.
// *discordgo.Session satisfies it.
type ChatClient interface {
	// Channel resolves a channel by id
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)

	// ChannelMessageSend posts a plain text message
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// ChannelMessageSendEmbed posts an embed
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// ChannelFileSend uploads a file
	ChannelFileSend(channelID, name string, r io.Reader, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
