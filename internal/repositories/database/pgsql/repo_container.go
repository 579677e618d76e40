package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	channelRepo := newPgxChannelRepository(dbPool)
	shiftRepo := newPgxShiftRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	archiveRepo := newPgxMessageArchiveRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ChannelRepo:    channelRepo,
		ShiftRepo:      shiftRepo,
		LedgerRepo:     ledgerRepo,
		MessageArchive: archiveRepo,
	}
}
