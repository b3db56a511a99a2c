package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell position")
	ErrMalformedInput = errors.New("malformed move input")
	ErrEndOfInput     = errors.New("end of input")
)
