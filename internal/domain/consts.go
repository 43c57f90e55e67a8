package domain

import "fmt"

// DayLayout is the format of attendance days, in the configured timezone.
const DayLayout = "2006-01-02"

// DefaultCommandPrefix is used when no prefix is configured.
const DefaultCommandPrefix = "!"

// Mention renders a Discord user mention.
func Mention(memberID string) string {
	return fmt.Sprintf("<@%s>", memberID)
}

// MissedMessage is posted when a member's window ends without a check-in.
func MissedMessage(memberID string) string {
	return fmt.Sprintf("%s, you didn't wake up today eh. Big lack.", Mention(memberID))
}

// GoodMorningMessage is posted on the first check-in inside a member's window.
func GoodMorningMessage(memberID string) string {
	return fmt.Sprintf("Good morning %s! ☀️", Mention(memberID))
}
