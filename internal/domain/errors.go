package domain

import "errors"

// Error kinds surfaced across service boundaries. Callers match them with
// errors.Is; messages wrapped around them carry the operation detail.
var (
	// ErrInvalidArgument marks caller mistakes that must be rejected before
	// any store interaction happens.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRemoteRead marks a failed listing against the document store.
	ErrRemoteRead = errors.New("remote read failed")

	// ErrRemoteWrite marks a failed create, update or delete against the
	// document store. Partially applied batch writes are not rolled back.
	ErrRemoteWrite = errors.New("remote write failed")

	// ErrNoActivePlayers is returned when a balancing run finds nobody
	// eligible to distribute.
	ErrNoActivePlayers = errors.New("no active players")

	// ErrUpdateInFlight is returned when a score update is dropped because
	// another one is still pending.
	ErrUpdateInFlight = errors.New("score update already in flight")

	// ErrNotFound is returned for lookups of documents that do not exist.
	ErrNotFound = errors.New("not found")
)
