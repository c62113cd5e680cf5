package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type League string

const (
	LeagueLaliga  League = "Laliga"
	LeagueLeague1 League = "League 1"
	LeagueLeague2 League = "League 2"
)

// Leagues lists every league in display order.
var Leagues = []League{LeagueLaliga, LeagueLeague1, LeagueLeague2}

func (l League) Valid() bool {
	switch l {
	case LeagueLaliga, LeagueLeague1, LeagueLeague2:
		return true
	}
	return false
}

type Status string

const (
	StatusActive  Status = "Active"
	StatusRetired Status = "Retired"
)

var Statuses = []Status{StatusActive, StatusRetired}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusRetired:
		return true
	}
	return false
}

type Position string

const (
	PositionForward    Position = "Forward"
	PositionBackward   Position = "Backward"
	PositionMidfielder Position = "Midfielder"
)

var Positions = []Position{PositionForward, PositionBackward, PositionMidfielder}

func (p Position) Valid() bool {
	switch p {
	case PositionForward, PositionBackward, PositionMidfielder:
		return true
	}
	return false
}

// DateLayout is the wire and form format of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date at UTC midnight.
type Date struct{ time.Time }

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

type Player struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DOB           Date      `json:"dob"`
	LeaguesPlayed []League  `json:"leaguesPlayed"`
	Height        float64   `json:"height"`
	Status        Status    `json:"status"`
	Position      Position  `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices with p.
func (p Player) Clone() Player {
	if p.LeaguesPlayed != nil {
		p.LeaguesPlayed = append([]League(nil), p.LeaguesPlayed...)
	}
	return p
}
