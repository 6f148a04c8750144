package roster

import "errors"

// ErrPlayerNotFound is returned when a lookup names a player absent from the roster.
var ErrPlayerNotFound = errors.New("roster: player not found")

// ErrBadHeader is returned when the CSV input has no header row.
var ErrBadHeader = errors.New("roster: missing header row")
