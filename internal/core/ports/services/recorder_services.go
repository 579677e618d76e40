package services

import (
	"context"

	"github.com/sothea-dev/rielsum/internal/core/domain"
	"github.com/sothea-dev/rielsum/internal/dto"
)

// DuplicateGuardSvc decides whether a candidate transaction has already been
// recorded. This is a fast-path check only; the store-level uniqueness
// constraint remains the authoritative safety net.
type DuplicateGuardSvc interface {
	IsDuplicate(ctx context.Context, channelID int64, reference *string, messageID int64) (bool, error)
}

// RecorderSvcFacade is the composition root of the core: one inbound message
// event in, one typed outcome out.
type RecorderSvcFacade interface {
	// Process runs the extract → eligibility → duplicate → commit pipeline.
	// The returned error is non-nil only for StatusError outcomes (store
	// failures); every rejection is reported through the status alone.
	Process(ctx context.Context, event dto.InboundMessageEvent) (domain.RecordResult, error)
}
