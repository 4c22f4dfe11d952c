package models

import "time"

// ExpiryLayout matches the datetime-local form value polls are created
// with ("2026-01-02T15:04"). Stored timestamps may also be RFC 3339.
const ExpiryLayout = "2006-01-02T15:04"

type PollState string

const (
	PollOpen    PollState = "open"
	PollVoted   PollState = "voted"
	PollExpired PollState = "expired"
)

type Poll struct {
	ID        int            `json:"id"`
	Question  string         `json:"question"`
	Options   []string       `json:"options"`
	Results   []int          `json:"results"`
	ExpiresAt string         `json:"expires_at"`
	Votes     map[string]int `json:"votes"`
}

// PollView is a poll with the state derived for one requester.
type PollView struct {
	Poll
	State PollState `json:"state"`
}

func (p *Poll) ExpiryTime() (time.Time, error) {
	if t, err := time.ParseInLocation(ExpiryLayout, p.ExpiresAt, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, p.ExpiresAt)
}

// Expired reports whether the poll is past its expiry. An unparseable
// expiry counts as expired.
func (p *Poll) Expired(now time.Time) bool {
	t, err := p.ExpiryTime()
	if err != nil {
		return true
	}
	return !t.After(now)
}

func (p *Poll) StateFor(username string, now time.Time) PollState {
	if _, ok := p.Votes[username]; ok {
		return PollVoted
	}
	if p.Expired(now) {
		return PollExpired
	}
	return PollOpen
}
