package memory

import (
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/jonboulle/clockwork"
)

func NewRepositories(clock clockwork.Clock) repository.Repositories {
	return repository.Repositories{
		Players:   NewPlayers(clock),
		AuditLogs: NewAuditLogs(clock),
	}
}
