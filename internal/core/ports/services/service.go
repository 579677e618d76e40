package services

// ServiceContainer holds all service facades for handler wiring.
type ServiceContainer struct {
	Channel   ChannelSvcFacade
	Shift     ShiftSvcFacade
	Recorder  RecorderSvcFacade
	Reporting ReportingSvcFacade
	Verifier  VerifierSvcFacade
}
