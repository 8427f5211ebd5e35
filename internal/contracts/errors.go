package contracts

import "errors"

// Error taxonomy surfaced past the engine boundary. Source failures never
// appear here: adapters recover locally by substituting default records.
var (
	// ErrSnapshotNotReady is returned when an operation needs a cached
	// snapshot and none has been built yet.
	ErrSnapshotNotReady = errors.New("no snapshot available, load the dashboard first")

	// ErrUnknownCountry is returned for a country code outside the registry
	ErrUnknownCountry = errors.New("unknown country code")

	// ErrInvalidInput is returned for malformed caller input
	ErrInvalidInput = errors.New("invalid input")
)
