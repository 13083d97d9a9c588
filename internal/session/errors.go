package session

import "errors"

var (
	// ErrLoadingSession is returned when the session store fails while a
	// session is being resolved.
	ErrLoadingSession = errors.New("error loading session")

	// ErrSavingSession is returned when a modified session cannot be persisted.
	ErrSavingSession = errors.New("error saving session")

	// ErrDestroyingSession is returned when a session record cannot be removed.
	ErrDestroyingSession = errors.New("error destroying session")
)
