package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/morning-club-bot/internal/domain"
)

type CommandType string

const (
	CmdAdd             CommandType = "add"
	CmdRemove          CommandType = "remove"
	CmdUpdate          CommandType = "update"
	CmdActivate        CommandType = "activate"
	CmdDeactivate      CommandType = "deactivate"
	CmdInfo            CommandType = "info"
	CmdSetTextChannel  CommandType = "set_text_channel"
	CmdSetVoiceChannel CommandType = "set_voice_channel"
	CmdExport          CommandType = "export"
	CmdHelp            CommandType = "help"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidMention = errors.New("invalid member mention")
	ErrInvalidChannel = errors.New("invalid channel mention")
	ErrInvalidBool    = errors.New("invalid weekends flag, expected true/false or yes/no")
	ErrMissingArgs    = errors.New("missing arguments")
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// MemberArgs are the arguments of add and update.
type MemberArgs struct {
	MemberID        string
	Window          domain.Window
	ObserveWeekends bool
}

// ParseCommand parses the text that follows the command prefix.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "add", "add_users":
		cmd.Type = CmdAdd
	case "remove", "rm", "remove_users":
		cmd.Type = CmdRemove
	case "update":
		cmd.Type = CmdUpdate
	case "activate":
		cmd.Type = CmdActivate
	case "deactivate":
		cmd.Type = CmdDeactivate
	case "info":
		cmd.Type = CmdInfo
	case "set_text_channel":
		cmd.Type = CmdSetTextChannel
	case "set_voice_channel":
		cmd.Type = CmdSetVoiceChannel
	case "export":
		cmd.Type = CmdExport
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}

	return cmd, nil
}

// ParseMemberArgs reads `@member start end [weekends]`.
func ParseMemberArgs(args []string) (MemberArgs, error) {
	if len(args) < 3 || len(args) > 4 {
		return MemberArgs{}, ErrMissingArgs
	}

	memberID, err := ParseMention(args[0])
	if err != nil {
		return MemberArgs{}, err
	}

	window, err := domain.ParseWindow(args[1], args[2])
	if err != nil {
		return MemberArgs{}, err
	}

	var weekends bool
	if len(args) == 4 {
		if weekends, err = ParseBool(args[3]); err != nil {
			return MemberArgs{}, err
		}
	}

	return MemberArgs{MemberID: memberID, Window: window, ObserveWeekends: weekends}, nil
}

// ParseMentions reads one or more members.
func ParseMentions(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrMissingArgs
	}

	ids := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := ParseMention(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseMention accepts <@id>, <@!id> or a raw snowflake.
func ParseMention(s string) (string, error) {
	id := strings.TrimSpace(s)
	if strings.HasPrefix(id, "<@") && strings.HasSuffix(id, ">") {
		id = strings.TrimPrefix(strings.TrimSuffix(strings.TrimPrefix(id, "<@"), ">"), "!")
	}
	if !isSnowflake(id) {
		return "", fmt.Errorf("%w: %s", ErrInvalidMention, s)
	}
	return id, nil
}

// ParseChannel accepts <#id> or a raw snowflake.
func ParseChannel(s string) (string, error) {
	id := strings.TrimSpace(s)
	if strings.HasPrefix(id, "<#") && strings.HasSuffix(id, ">") {
		id = strings.TrimSuffix(strings.TrimPrefix(id, "<#"), ">")
	}
	if !isSnowflake(id) {
		return "", fmt.Errorf("%w: %s", ErrInvalidChannel, s)
	}
	return id, nil
}

func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on", "weekends":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s", ErrInvalidBool, s)
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func GetHelpText(prefix string) string {
	return `**Available Commands:**

**Members:**
• ` + "`" + prefix + "add @member HH:MM:SS HH:MM:SS [weekends]`" + ` - Add a member with a check-in window (weekends: yes/no, default no)
• ` + "`" + prefix + "update @member HH:MM:SS HH:MM:SS [weekends]`" + ` - Change an inactive member's window
• ` + "`" + prefix + "remove @member...`" + ` - Remove inactive members and their history

**Schedule:**
• ` + "`" + prefix + "activate @member...`" + ` - Start tracking members
• ` + "`" + prefix + "deactivate @member...`" + ` - Stop tracking members

**Channels:**
• ` + "`" + prefix + "set_text_channel #channel`" + ` - Channel where the bot posts
• ` + "`" + prefix + "set_voice_channel <#id>`" + ` - Voice channel that counts as waking up

**Info:**
• ` + "`" + prefix + "info [@member]`" + ` - Show the club or one member
• ` + "`" + prefix + "export`" + ` - Download attendance as CSV`
}
