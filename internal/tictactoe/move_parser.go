package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/moving-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/moving-tictactoe/internal/entity"
)

// ParseMove - converts a "row col" line with one-based coordinates into a board position.
func ParseMove(line string) (entity.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Position{}, fmt.Errorf("%w: expected 2 numbers, got %d", apperror.ErrMalformedInput, len(fields))
	}

	coords := [2]int{}
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return entity.Position{}, fmt.Errorf("%w: %q is not a number", apperror.ErrMalformedInput, field)
		}

		if value < 1 || value > entity.BoardSize {
			return entity.Position{}, fmt.Errorf("%w: %d is out of range", apperror.ErrMalformedInput, value)
		}

		coords[i] = value - 1
	}

	return entity.Position{Row: coords[0], Col: coords[1]}, nil
}
