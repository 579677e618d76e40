package domain

// RecordStatus is the terminal state of processing one inbound message event.
type RecordStatus string

const (
	// StatusCommitted means a ledger entry was persisted.
	StatusCommitted RecordStatus = "committed"
	// StatusRejectedNoMatch means no amount/currency was found, or the channel
	// is unknown. Expected high-frequency outcome, not a failure.
	StatusRejectedNoMatch RecordStatus = "rejected_no_match"
	// StatusRejectedDuplicate means the transaction was already recorded.
	StatusRejectedDuplicate RecordStatus = "rejected_duplicate"
	// StatusRejectedStale means the message predates channel registration.
	StatusRejectedStale RecordStatus = "rejected_stale"
	// StatusError means the store failed; the caller may re-deliver safely.
	StatusError RecordStatus = "error"
)

// RecordResult reports the outcome of TransactionRecorder.Process to the
// transport for optional user-facing acknowledgment.
type RecordResult struct {
	Status  RecordStatus `json:"status"`
	EntryID string       `json:"entryID,omitempty"`
	ShiftID *int64       `json:"shiftID,omitempty"`
}
