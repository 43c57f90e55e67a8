package entity

import "github.com/diegoclair/morning-club-bot/internal/domain"

// Member is a tracked individual with a personal daily check-in window.
type Member struct {
	ID              string           `db:"id"`
	StartTime       domain.TimeOfDay `db:"start_time"`
	EndTime         domain.TimeOfDay `db:"end_time"`
	ObserveWeekends bool             `db:"weekends"`
	Active          bool             `db:"active"`
}

// Window returns the member's check-in window.
func (m Member) Window() domain.Window {
	return domain.Window{Start: m.StartTime, End: m.EndTime}
}

// Attendance is the outcome of one member's day.
type Attendance struct {
	MemberID string `db:"member_id"`
	Day      string `db:"day"`
	WokeUp   bool   `db:"woke_up"`
	Notified bool   `db:"notified"`
}

// Config holds the channels the bot listens to and writes to.
type Config struct {
	TextChannelID  string `db:"text_channel_id"`
	VoiceChannelID string `db:"voice_channel_id"`
}

// Summary is the aggregate view returned by the info command.
type Summary struct {
	Config  Config
	Members []*Member
	Active  []string
}
