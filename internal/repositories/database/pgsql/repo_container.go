package pgsql

import (
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	employeeRepo := newPgxEmployeeRepository(dbPool)
	giftRepo := newPgxGiftRepository(dbPool)
	pollRepo := newPgxPollRepository(dbPool)
	ballotRepo := newPgxBallotRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EmployeeRepo: employeeRepo,
		GiftRepo:     giftRepo,
		PollRepo:     pollRepo,
		BallotRepo:   ballotRepo,
	}
}
