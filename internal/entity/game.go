package entity

import (
	"fmt"

	"github.com/rocketscienceinc/moving-tictactoe/internal/apperror"
)

const (
	BoardSize = 3

	// MaxActiveMarks is the number of marks, both players combined, that may stay on the board at once.
	MaxActiveMarks = 6
)

// winRays are the directions scanned from every occupied cell when looking for a line.
var winRays = [3]Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
}

type Mark int8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Board [BoardSize][BoardSize]Mark

func (that *Board) At(pos Position) Mark {
	return that[pos.Row][pos.Col]
}

// Occupied - counts the cells holding a player's mark.
func (that *Board) Occupied() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.Occupied() == BoardSize*BoardSize
}

// GameState holds the board, the player to move and the positions currently on the board, oldest first.
type GameState struct {
	Board         Board      `json:"board"`
	History       []Position `json:"history"`
	CurrentPlayer Mark       `json:"current_player"`
}

func NewGameState() *GameState {
	return &GameState{
		History:       make([]Position, 0, MaxActiveMarks+1),
		CurrentPlayer: PlayerX,
	}
}

// ApplyMove - places the current player's mark at pos. When the board would hold more
// than MaxActiveMarks marks, the oldest one is removed before returning.
func (that *GameState) ApplyMove(pos Position) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, pos)
	}

	if that.Board.At(pos) != Empty {
		return apperror.ErrCellOccupied
	}

	that.Board[pos.Row][pos.Col] = that.CurrentPlayer
	that.History = append(that.History, pos)

	if len(that.History) > MaxActiveMarks {
		oldest := that.History[0]
		that.History = that.History[1:]
		that.Board[oldest.Row][oldest.Col] = Empty
	}

	return nil
}

// CheckWin - reports whether three equal marks line up starting from any occupied cell
// towards the right, down or down-right. The anti-diagonal is not scanned.
func (that *GameState) CheckWin() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			start := Position{Row: row, Col: col}
			if that.Board.At(start) == Empty {
				continue
			}

			for _, ray := range winRays {
				if that.checkLine(start, ray) {
					return true
				}
			}
		}
	}

	return false
}

func (that *GameState) checkLine(start, ray Position) bool {
	mark := that.Board.At(start)
	pos := start

	for range 2 {
		pos = Position{Row: pos.Row + ray.Row, Col: pos.Col + ray.Col}
		if !pos.Valid() || that.Board.At(pos) != mark {
			return false
		}
	}

	return true
}

// CheckDraw - true only when every cell is taken. With the six mark window active this never happens.
func (that *GameState) CheckDraw() bool {
	return that.Board.IsFull()
}

func (that *GameState) SwitchPlayer() {
	that.CurrentPlayer = that.CurrentPlayer.Opponent()
}
