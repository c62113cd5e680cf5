package postgres

import (
	repo "github.com/baharkarakas/player-registry/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Players:   NewPlayers(pool),
		AuditLogs: &auditLogsRepo{pool},
	}
}
