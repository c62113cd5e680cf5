package form_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/player-registry/internal/form"
	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/baharkarakas/player-registry/internal/repository/memory"
)

type recordingNav struct{ paths []string }

func (n *recordingNav) NavigateTo(path string) { n.paths = append(n.paths, path) }

type failingStore struct{ err error }

func (s failingStore) Find(context.Context, string) (models.Player, error) {
	return models.Player{}, s.err
}
func (s failingStore) Create(context.Context, models.Player) (models.Player, error) {
	return models.Player{}, s.err
}
func (s failingStore) Update(context.Context, models.Player) (models.Player, error) {
	return models.Player{}, s.err
}

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func leo() form.Values {
	return form.Values{
		Name:          "Leo",
		DOB:           now.AddDate(-10, 0, 0).Format(models.DateLayout),
		LeaguesPlayed: []string{"Laliga"},
		Height:        "1.7",
		Status:        "Active",
		Position:      "Forward",
	}
}

func existing(t *testing.T) models.Player {
	t.Helper()
	dob, err := models.ParseDate("2000-01-15")
	require.NoError(t, err)
	return models.Player{
		ID:            "7b0c1f8e-9a51-4c1e-8d0f-2f3c4b5a6d7e",
		Name:          "Ana",
		DOB:           dob,
		LeaguesPlayed: []models.League{models.LeagueLeague1, models.LeagueLeague2},
		Height:        1.65,
		Status:        models.StatusRetired,
		Position:      models.PositionMidfielder,
	}
}

func setup(t *testing.T, seed ...models.Player) (*form.Controller, repository.Players, *recordingNav) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(now)
	store := memory.NewPlayers(clock, seed...)
	nav := &recordingNav{}
	return form.New(store, nav, form.WithClock(clock)), store, nav
}

func TestSubmit_CreateNewRecord(t *testing.T) {
	c, store, nav := setup(t)
	ctx := context.Background()

	act, errs, err := c.Submit(ctx, "", leo())
	require.NoError(t, err)
	require.Nil(t, errs)

	assert.Equal(t, form.ActionCreate, act.Kind)
	_, perr := uuid.Parse(act.Player.ID)
	assert.NoError(t, perr, "id should be a UUID")
	assert.Equal(t, "Leo", act.Player.Name)
	assert.Equal(t, now.AddDate(-10, 0, 0).Format(models.DateLayout), act.Player.DOB.String())
	assert.Equal(t, []models.League{models.LeagueLaliga}, act.Player.LeaguesPlayed)
	assert.InDelta(t, 1.7, act.Player.Height, 1e-9)
	assert.Equal(t, models.StatusActive, act.Player.Status)
	assert.Equal(t, models.PositionForward, act.Player.Position)

	stored, err := store.Find(ctx, act.Player.ID)
	require.NoError(t, err)
	assert.Equal(t, act.Player, stored)
	assert.Equal(t, []string{form.DefaultListingPath}, nav.paths)
}

func TestSubmit_CreateAssignsFreshIDs(t *testing.T) {
	seed := existing(t)
	c, store, _ := setup(t, seed)
	ctx := context.Background()

	ids := map[string]bool{seed.ID: true}
	for i := 0; i < 5; i++ {
		act, _, err := c.Submit(ctx, "", leo())
		require.NoError(t, err)
		assert.False(t, ids[act.Player.ID], "id %s reused", act.Player.ID)
		ids[act.Player.ID] = true
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestSubmit_InvalidDispatchesNothing(t *testing.T) {
	c, store, nav := setup(t)
	ctx := context.Background()

	v := leo()
	v.DOB = now.AddDate(-2, 0, 0).Format(models.DateLayout)

	act, errs, err := c.Submit(ctx, "", v)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, form.FieldDOB, errs[0].Field)
	assert.Equal(t, form.MsgDOBTooRecent, errs[0].Msg)
	assert.Equal(t, form.Action{}, act)

	all, _ := store.List(ctx)
	assert.Empty(t, all)
	assert.Empty(t, nav.paths)
}

func TestSubmit_HeightTooHigh(t *testing.T) {
	c, _, _ := setup(t)
	v := leo()
	v.Height = "3.5"

	_, errs, err := c.Submit(context.Background(), "", v)
	require.NoError(t, err)
	msg, ok := errs.Get(form.FieldHeight)
	require.True(t, ok)
	assert.Equal(t, "Height cannot be more than 3 meter", msg)
}

func TestLoadForEdit_ExistingRecord(t *testing.T) {
	seed := existing(t)
	c, _, nav := setup(t, seed)
	ctx := context.Background()

	v := c.LoadForEdit(ctx, seed.ID)
	assert.Equal(t, form.Values{
		Name:          "Ana",
		DOB:           "2000-01-15",
		LeaguesPlayed: []string{"League 1", "League 2"},
		Height:        "1.65",
		Status:        "Retired",
		Position:      "Midfielder",
	}, v)

	act, errs, err := c.Submit(ctx, seed.ID, v)
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Equal(t, form.ActionUpdate, act.Kind)
	assert.Equal(t, seed.ID, act.Player.ID)
	assert.Equal(t, seed.Name, act.Player.Name)
	assert.Equal(t, seed.LeaguesPlayed, act.Player.LeaguesPlayed)
	assert.Equal(t, []string{form.DefaultListingPath}, nav.paths)
}

func TestSubmit_UpdateOverwritesAllButID(t *testing.T) {
	seed := existing(t)
	c, store, _ := setup(t, seed)
	ctx := context.Background()

	act, errs, err := c.Submit(ctx, seed.ID, leo())
	require.NoError(t, err)
	require.Nil(t, errs)

	got, err := store.Find(ctx, seed.ID)
	require.NoError(t, err)
	assert.Equal(t, seed.ID, got.ID)
	assert.Equal(t, "Leo", got.Name)
	assert.Equal(t, []models.League{models.LeagueLaliga}, got.LeaguesPlayed)
	assert.InDelta(t, 1.7, got.Height, 1e-9)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, models.PositionForward, got.Position)
	assert.Equal(t, act.Player, got)

	all, _ := store.List(ctx)
	assert.Len(t, all, 1)
}

func TestLoadForEdit_UnknownIDYieldsEmptyForm(t *testing.T) {
	c, _, _ := setup(t, existing(t))
	assert.Equal(t, form.Empty(), c.LoadForEdit(context.Background(), "missing"))
}

func TestLoadForEdit_NoIDYieldsEmptyForm(t *testing.T) {
	c, _, _ := setup(t, existing(t))
	v := c.LoadForEdit(context.Background(), "")
	assert.Equal(t, form.Empty(), v)
	assert.Equal(t, []string{}, v.LeaguesPlayed)
}

func TestLoadForEdit_StoreFailureYieldsEmptyForm(t *testing.T) {
	c := form.New(failingStore{err: errors.New("boom")}, nil)
	assert.Equal(t, form.Empty(), c.LoadForEdit(context.Background(), "abc"))
}

func TestSubmit_UpdateUnknownIDReturnsStoreError(t *testing.T) {
	c, _, nav := setup(t)

	_, errs, err := c.Submit(context.Background(), "missing", leo())
	assert.Nil(t, errs)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, nav.paths)
}

func TestSubmit_CustomListingPathAndIDFunc(t *testing.T) {
	clock := clockwork.NewFakeClockAt(now)
	nav := &recordingNav{}
	c := form.New(memory.NewPlayers(clock), nav,
		form.WithClock(clock),
		form.WithIDFunc(func() string { return "fixed-id" }),
		form.WithListingPath("/players"),
	)

	act, _, err := c.Submit(context.Background(), "", leo())
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", act.Player.ID)
	assert.Equal(t, []string{"/players"}, nav.paths)

	_, _, err = c.Submit(context.Background(), "", leo())
	assert.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestController_ValidateUsesClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(now)
	c := form.New(memory.NewPlayers(clock), nil, form.WithClock(clock))

	v := leo()
	v.DOB = "2021-10-20"
	assert.NotNil(t, c.Validate(v))

	clock.Advance(24 * time.Hour)
	assert.Nil(t, c.Validate(v))
}

func TestModeOf(t *testing.T) {
	assert.Equal(t, form.ModeCreate, form.ModeOf(""))
	assert.Equal(t, form.ModeCreate, form.ModeOf("  "))
	assert.Equal(t, form.ModeEdit, form.ModeOf("abc"))
}
