package services

import (
	portsrepo "github.com/sothea-dev/rielsum/internal/core/ports/repositories"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. The verifier is attached separately once a transport
// MessageSource exists (see AttachVerifier).
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Shift lifecycle first since both channel admin and the recorder depend
	// on it.
	container.Shift = NewShiftService(repos.ShiftRepo)
	container.Channel = NewChannelService(repos.ChannelRepo, container.Shift)

	guard := NewDuplicateGuard(repos.LedgerRepo)
	container.Recorder = NewRecorderService(
		container.Channel,
		guard,
		container.Shift,
		repos.LedgerRepo,
		repos.MessageArchive,
		cfg.RegistrationGrace,
	)

	container.Reporting = NewReportingService(repos.LedgerRepo, cfg.ReportLocation)

	return container
}

// AttachVerifier wires the reverification sweep once the transport-side
// MessageSource is available.
func AttachVerifier(container *portssvc.ServiceContainer, cfg *config.Config, source portssvc.MessageSource) {
	container.Verifier = NewVerifierService(
		source,
		container.Channel,
		container.Recorder,
		cfg.VerifySweepInterval,
		cfg.VerifySweepLookback,
	)
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ShiftSvcFacade    = (*shiftService)(nil)
	_ portssvc.ChannelSvcFacade  = (*channelService)(nil)
	_ portssvc.RecorderSvcFacade = (*recorderService)(nil)
)
