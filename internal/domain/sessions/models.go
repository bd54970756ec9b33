package sessions

import (
	"errors"
	"time"
)

// Mood is the self-reported state a play session was started in.
type Mood string

const (
	MoodFocused   Mood = "Focused"
	MoodChill     Mood = "Chill"
	MoodEnergetic Mood = "Energetic"
	MoodNeutral   Mood = "Neutral"
)

// MaxNotesLength caps free-form session notes.
const MaxNotesLength = 500

var (
	ErrInvalidMood    = errors.New("invalid mood")
	ErrAlreadyEnded   = errors.New("session already ended")
	ErrGameRequired   = errors.New("game info required")
	ErrNotesTooLong   = errors.New("notes exceed 500 characters")
	ErrEndBeforeStart = errors.New("end time before start time")
)

// ParseMood maps free text onto a Mood. Empty input yields MoodNeutral.
func ParseMood(s string) (Mood, error) {
	switch Mood(s) {
	case "":
		return MoodNeutral, nil
	case MoodFocused, MoodChill, MoodEnergetic, MoodNeutral:
		return Mood(s), nil
	default:
		return "", ErrInvalidMood
	}
}

// PlaySession records one period of play on a single game.
type PlaySession struct {
	ID              string     `json:"sessionId"`
	SteamID         string     `json:"steamId"`
	AppID           int        `json:"appid"`
	GameName        string     `json:"gameName"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes *int       `json:"durationMinutes"`
	Mood            Mood       `json:"mood"`
	Notes           string     `json:"notes"`
}

// Active reports whether the session has not been ended yet.
func (s PlaySession) Active() bool {
	return s.EndTime == nil
}

// End closes the session at the given time and records whole elapsed minutes.
func (s *PlaySession) End(at time.Time) error {
	if !s.Active() {
		return ErrAlreadyEnded
	}
	if at.Before(s.StartTime) {
		return ErrEndBeforeStart
	}
	end := at
	minutes := int(at.Sub(s.StartTime) / time.Minute)
	s.EndTime = &end
	s.DurationMinutes = &minutes
	return nil
}
