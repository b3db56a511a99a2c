package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/moving-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/moving-tictactoe/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRunGame(t *testing.T) {
	conf := &config.Config{LogLevel: "error", NoColors: true}

	t.Run("Game ends with a win", func(t *testing.T) {
		// Given: X fills the left column while O plays the middle one
		in := strings.NewReader("1 1\n1 2\n2 1\n2 2\n3 1\n")
		var out bytes.Buffer

		// When: the game runs
		err := runGame(context.Background(), newTestLogger(), conf, in, &out)

		// Then: X is announced as the winner after the final board
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "----------\nPlayer X wins!\n"))
		assert.Contains(t, out.String(), "X | O |   | \n")
	})

	t.Run("Bad input is reported and retried", func(t *testing.T) {
		// Given: garbage and an occupied cell before the winning moves
		in := strings.NewReader("a b\n1 1\n1 1\n1 2\n2 1\n2 2\n3 1\n")
		var out bytes.Buffer

		// When: the game runs
		err := runGame(context.Background(), newTestLogger(), conf, in, &out)

		// Then: both errors are shown and the game still finishes
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Invalid input! Please enter two numbers between 1 and 3, separated by a space.\n")
		assert.Contains(t, out.String(), "Invalid move! The cell is not empty.\n")
		assert.Contains(t, out.String(), "Player X wins!\n")
	})

	t.Run("End of input fails the run", func(t *testing.T) {
		// Given: input that stops mid-game
		in := strings.NewReader("2 2\n")
		var out bytes.Buffer

		// When: the game runs
		err := runGame(context.Background(), newTestLogger(), conf, in, &out)

		// Then: end of input is reported
		require.ErrorIs(t, err, apperror.ErrEndOfInput)
		assert.Contains(t, out.String(), "Player O, enter your move (row col): \n")
	})

	t.Run("Very long line is rejected as invalid input", func(t *testing.T) {
		// Given: a 70000 byte line before the winning moves
		in := strings.NewReader(strings.Repeat("x", 70000) + "\n1 1\n1 2\n2 1\n2 2\n3 1\n")
		var out bytes.Buffer

		// When: the game runs
		err := runGame(context.Background(), newTestLogger(), conf, in, &out)

		// Then: the long line is reported as invalid and the game still finishes
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Invalid input! Please enter two numbers between 1 and 3, separated by a space.\n")
		assert.True(t, strings.HasSuffix(out.String(), "Player X wins!\n"))
	})

	t.Run("Cancelled context is a clean shutdown", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := runGame(ctx, newTestLogger(), conf, strings.NewReader(""), io.Discard)

		assert.NoError(t, err)
	})
}
