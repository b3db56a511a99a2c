package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/moving-tictactoe/internal/entity"
)

const (
	cellDivider  = " | "
	rowSeparator = "----------"

	colorPlayerX = "1" // ANSI red
	colorPlayerO = "4" // ANSI blue
)

// Renderer draws the board and game messages on a terminal.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer - creates a renderer writing to w. Colors are dropped when
// withColors is false or w is not a terminal that can show them.
func NewRenderer(w io.Writer, withColors bool) *Renderer {
	var opts []termenv.OutputOption
	if !withColors {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return newRenderer(termenv.NewOutput(w, opts...))
}

func newRenderer(output *termenv.Output) *Renderer {
	return &Renderer{output: output}
}

func (that *Renderer) Render(board entity.Board) error {
	var sb strings.Builder

	for _, row := range board {
		for _, cell := range row {
			sb.WriteString(that.glyph(cell))
			sb.WriteString(cellDivider)
		}
		sb.WriteString("\n")
		sb.WriteString(rowSeparator)
		sb.WriteString("\n")
	}

	if _, err := fmt.Fprint(that.output, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Renderer) Message(text string) error {
	if _, err := fmt.Fprintln(that.output, text); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Renderer) glyph(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.output.String(mark.String()).Foreground(that.output.Color(colorPlayerX)).Bold().String()
	case entity.PlayerO:
		return that.output.String(mark.String()).Foreground(that.output.Color(colorPlayerO)).Bold().String()
	default:
		return mark.String()
	}
}
