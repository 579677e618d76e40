package services

import (
	"context"

	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
)

// duplicateGuard implements the combined dedup policy: when a reference is
// present a candidate is a duplicate iff an entry with the same
// (channel, reference, message) triple exists; when absent, the
// (channel, message) pair decides. The message id alone is insufficient since
// upstream re-delivery can reuse ids across unrelated channels; the reference
// alone would false-positive on coincidental collisions across channels.
type duplicateGuard struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewDuplicateGuard creates the fast-path duplicate check. The store-level
// uniqueness constraints remain the authoritative guarantee.
func NewDuplicateGuard(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.DuplicateGuardSvc {
	return &duplicateGuard{ledgerRepo: ledgerRepo}
}

var _ portssvc.DuplicateGuardSvc = (*duplicateGuard)(nil)

func (g *duplicateGuard) IsDuplicate(ctx context.Context, channelID int64, reference *string, messageID int64) (bool, error) {
	return g.ledgerRepo.ExistsLedgerEntry(ctx, channelID, reference, messageID)
}
