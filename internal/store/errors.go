package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCorrupt is returned when a stored session document cannot
	// be decoded.
	ErrSessionCorrupt = errors.New("session document is corrupt")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached (connection refused, dropped, or not accepting connections).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnsupportedDSN is returned when the connection string matches no
	// supported database driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
