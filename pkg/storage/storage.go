package storage

// Storage defines the root interface for the entire data layer.
// Handlers should depend on the narrower interfaces where they can.
type Storage interface {
	AccountStore
	TransactionStore
}

// AccountLedger is what read-only account endpoints need: lookup plus the ledger reads.
type AccountLedger interface {
	AccountStore
	LedgerReader
}
