package apperror

import "errors"

var (
	ErrInvalidBoard     = errors.New("invalid game board")
	ErrMarkerAssignment = errors.New("invalid player markers")
	ErrIllegalMove      = errors.New("illegal move")
	ErrNoMoveAvailable  = errors.New("game is already finished, no move available")
	ErrUnknownStrategy  = errors.New("unknown search strategy")
)

// IsClientError - reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidBoard) ||
		errors.Is(err, ErrMarkerAssignment) ||
		errors.Is(err, ErrUnknownStrategy)
}
