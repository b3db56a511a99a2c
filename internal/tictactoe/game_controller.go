package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/moving-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/moving-tictactoe/internal/entity"
)

const (
	msgInvalidInput = "Invalid input! Please enter two numbers between 1 and 3, separated by a space."
	msgCellOccupied = "Invalid move! The cell is not empty."
	msgDraw         = "It's a draw!"
)

// InputSource yields one raw line per call and io.EOF once the input is exhausted.
type InputSource interface {
	ReadLine() (string, error)
}

type Display interface {
	Render(board entity.Board) error
	Message(text string) error
}

// Result describes how a finished game ended.
type Result struct {
	Winner entity.Mark `json:"winner"`
	Draw   bool        `json:"draw"`
	Turns  int         `json:"turns"`
}

type GameController struct {
	logger  *slog.Logger
	input   InputSource
	display Display

	newState func() *entity.GameState
}

func NewGameController(logger *slog.Logger, input InputSource, display Display) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		input:   input,
		display: display,

		newState: entity.NewGameState,
	}
}

// Play - runs one full game until a player wins or the board is full.
func (that *GameController) Play(ctx context.Context) (*Result, error) {
	state := that.newState()
	result := &Result{}

	that.logger.Info("game started", "first_player", state.CurrentPlayer.String())

	for {
		if err := that.display.Render(state.Board); err != nil {
			return nil, fmt.Errorf("failed to render board: %w", err)
		}

		if err := that.makeMove(ctx, state); err != nil {
			return nil, err
		}
		result.Turns++

		switch {
		case state.CheckWin():
			result.Winner = state.CurrentPlayer
			return result, that.finish(state, fmt.Sprintf("Player %s wins!", state.CurrentPlayer))
		case state.CheckDraw():
			result.Draw = true
			return result, that.finish(state, msgDraw)
		}

		state.SwitchPlayer()
	}
}

// makeMove - asks the current player for a move until a legal one is applied.
func (that *GameController) makeMove(ctx context.Context, state *entity.GameState) error {
	log := that.logger.With("method", "makeMove", "player", state.CurrentPlayer.String())

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.display.Message(fmt.Sprintf("Player %s, enter your move (row col): ", state.CurrentPlayer)); err != nil {
			return fmt.Errorf("failed to show prompt: %w", err)
		}

		line, err := that.input.ReadLine()
		if errors.Is(err, io.EOF) {
			return apperror.ErrEndOfInput
		}
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		pos, err := ParseMove(line)
		if err != nil {
			log.Debug("rejected input", "line", line, "error", err)
			if err = that.display.Message(msgInvalidInput); err != nil {
				return fmt.Errorf("failed to show message: %w", err)
			}
			continue
		}

		err = state.ApplyMove(pos)
		if errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("rejected move", "position", pos.String())
			if err = that.display.Message(msgCellOccupied); err != nil {
				return fmt.Errorf("failed to show message: %w", err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		log.Debug("move applied", "position", pos.String(), "active_marks", len(state.History))

		return nil
	}
}

func (that *GameController) finish(state *entity.GameState, message string) error {
	if err := that.display.Render(state.Board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	if err := that.display.Message(message); err != nil {
		return fmt.Errorf("failed to show result: %w", err)
	}

	return nil
}
