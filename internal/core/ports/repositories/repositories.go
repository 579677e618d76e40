package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ChannelRepo    ChannelRepositoryFacade
	ShiftRepo      ShiftRepositoryFacade
	LedgerRepo     LedgerRepositoryFacade
	MessageArchive MessageArchiveFacade
}
