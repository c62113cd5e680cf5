package form

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/baharkarakas/player-registry/internal/models"
)

// Field names, in the order the form renders them.
const (
	FieldName          = "name"
	FieldDOB           = "dob"
	FieldLeaguesPlayed = "leaguesPlayed"
	FieldHeight        = "height"
	FieldStatus        = "status"
	FieldPosition      = "position"
)

var fieldOrder = []string{FieldName, FieldDOB, FieldLeaguesPlayed, FieldHeight, FieldStatus, FieldPosition}

// Values is the raw, editable state of the player form. Everything is kept
// as entered so an invalid submission can be shown back unchanged.
type Values struct {
	Name          string   `json:"name"`
	DOB           string   `json:"dob"`
	LeaguesPlayed []string `json:"leaguesPlayed"`
	Height        string   `json:"height"`
	Status        string   `json:"status"`
	Position      string   `json:"position"`
}

// Empty returns the defaults of a blank form.
func Empty() Values {
	return Values{LeaguesPlayed: []string{}}
}

// UnmarshalJSON accepts height as either a JSON number or a string.
func (v *Values) UnmarshalJSON(b []byte) error {
	type alias Values
	aux := struct {
		*alias
		Height json.RawMessage `json:"height"`
	}{alias: (*alias)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	v.Height = ""
	raw := bytes.TrimSpace(aux.Height)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &v.Height); err != nil {
			return err
		}
	default:
		v.Height = string(raw)
	}
	if v.LeaguesPlayed == nil {
		v.LeaguesPlayed = []string{}
	}
	return nil
}

// FromPlayer turns a stored record back into editable form state.
func FromPlayer(p models.Player) Values {
	leagues := make([]string, len(p.LeaguesPlayed))
	for i, l := range p.LeaguesPlayed {
		leagues[i] = string(l)
	}
	return Values{
		Name:          p.Name,
		DOB:           p.DOB.String(),
		LeaguesPlayed: leagues,
		Height:        strconv.FormatFloat(p.Height, 'f', -1, 64),
		Status:        string(p.Status),
		Position:      string(p.Position),
	}
}

// toPlayer builds the record for id. Only call it on values that passed
// Validate; parse failures are not reported here.
func (v Values) toPlayer(id string) models.Player {
	dob, _ := models.ParseDate(strings.TrimSpace(v.DOB))
	height, _ := strconv.ParseFloat(strings.TrimSpace(v.Height), 64)

	seen := make(map[models.League]bool, len(v.LeaguesPlayed))
	leagues := make([]models.League, 0, len(v.LeaguesPlayed))
	for _, s := range v.LeaguesPlayed {
		l := models.League(s)
		if seen[l] {
			continue
		}
		seen[l] = true
		leagues = append(leagues, l)
	}

	return models.Player{
		ID:            id,
		Name:          strings.TrimSpace(v.Name),
		DOB:           dob,
		LeaguesPlayed: leagues,
		Height:        height,
		Status:        models.Status(v.Status),
		Position:      models.Position(v.Position),
	}
}
