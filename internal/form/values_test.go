package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/player-registry/internal/models"
)

func TestValues_UnmarshalHeight(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"height": 1.75}`, "1.75"},
		{"string", `{"height": "2"}`, "2"},
		{"null", `{"height": null}`, ""},
		{"absent", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Values
			require.NoError(t, json.Unmarshal([]byte(tt.body), &v))
			assert.Equal(t, tt.want, v.Height)
			assert.NotNil(t, v.LeaguesPlayed)
		})
	}
}

func TestValues_UnmarshalKeepsOtherFields(t *testing.T) {
	var v Values
	body := `{"name":"Leo","dob":"2016-10-19","leaguesPlayed":["Laliga","League 2"],"height":1.7,"status":"Active","position":"Forward"}`
	require.NoError(t, json.Unmarshal([]byte(body), &v))

	assert.Equal(t, Values{
		Name:          "Leo",
		DOB:           "2016-10-19",
		LeaguesPlayed: []string{"Laliga", "League 2"},
		Height:        "1.7",
		Status:        "Active",
		Position:      "Forward",
	}, v)
}

func TestFromPlayer(t *testing.T) {
	dob, err := models.ParseDate("2010-02-03")
	require.NoError(t, err)

	v := FromPlayer(models.Player{
		ID:            "p1",
		Name:          "Ana",
		DOB:           dob,
		LeaguesPlayed: []models.League{models.LeagueLeague1},
		Height:        1.8,
		Status:        models.StatusRetired,
		Position:      models.PositionMidfielder,
	})

	assert.Equal(t, Values{
		Name:          "Ana",
		DOB:           "2010-02-03",
		LeaguesPlayed: []string{"League 1"},
		Height:        "1.8",
		Status:        "Retired",
		Position:      "Midfielder",
	}, v)
}

func TestToPlayer_TrimsAndDedupes(t *testing.T) {
	v := validValues()
	v.Name = "  Leo "
	v.LeaguesPlayed = []string{"Laliga", "League 2", "Laliga"}

	p := v.toPlayer("id-1")
	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "Leo", p.Name)
	assert.Equal(t, "2016-10-19", p.DOB.String())
	assert.Equal(t, []models.League{models.LeagueLaliga, models.LeagueLeague2}, p.LeaguesPlayed)
	assert.InDelta(t, 1.7, p.Height, 1e-9)
	assert.Equal(t, models.StatusActive, p.Status)
	assert.Equal(t, models.PositionForward, p.Position)
}
