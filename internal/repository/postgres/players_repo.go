package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type playersRepo struct{ pool *pgxpool.Pool }

func NewPlayers(pool *pgxpool.Pool) repository.Players {
	return &playersRepo{pool: pool}
}

const playerColumns = `id, name, dob, leagues_played, height, status, position, created_at, updated_at`

func scanPlayer(row pgx.Row) (models.Player, error) {
	var (
		p       models.Player
		dob     time.Time
		leagues []string
	)
	err := row.Scan(&p.ID, &p.Name, &dob, &leagues, &p.Height, &p.Status, &p.Position, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Player{}, err
	}
	p.DOB = models.NewDate(dob)
	p.LeaguesPlayed = make([]models.League, len(leagues))
	for i, l := range leagues {
		p.LeaguesPlayed[i] = models.League(l)
	}
	return p, nil
}

func leagueStrings(ls []models.League) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = string(l)
	}
	return out
}

func (r *playersRepo) Find(ctx context.Context, id string) (models.Player, error) {
	p, err := scanPlayer(r.pool.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Player{}, fmt.Errorf("find player %s: %w", id, repository.ErrNotFound)
	}
	return p, err
}

func (r *playersRepo) Create(ctx context.Context, p models.Player) (models.Player, error) {
	out, err := scanPlayer(r.pool.QueryRow(ctx, `
INSERT INTO players (id, name, dob, leagues_played, height, status, position)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO NOTHING
RETURNING `+playerColumns,
		p.ID, p.Name, p.DOB.Time, leagueStrings(p.LeaguesPlayed), p.Height, string(p.Status), string(p.Position),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Player{}, fmt.Errorf("create player %s: %w", p.ID, repository.ErrDuplicateID)
	}
	return out, err
}

func (r *playersRepo) Update(ctx context.Context, p models.Player) (models.Player, error) {
	out, err := scanPlayer(r.pool.QueryRow(ctx, `
UPDATE players
   SET name=$2, dob=$3, leagues_played=$4, height=$5, status=$6, position=$7, updated_at=now()
 WHERE id=$1
RETURNING `+playerColumns,
		p.ID, p.Name, p.DOB.Time, leagueStrings(p.LeaguesPlayed), p.Height, string(p.Status), string(p.Position),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Player{}, fmt.Errorf("update player %s: %w", p.ID, repository.ErrNotFound)
	}
	return out, err
}

func (r *playersRepo) List(ctx context.Context) ([]models.Player, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+playerColumns+` FROM players ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
