package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/moving-tictactoe/internal/config"
	"github.com/rocketscienceinc/moving-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/moving-tictactoe/transport/console"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return runGame(ctx, logger, conf, os.Stdin, os.Stdout)
}

func runGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	controller := tictactoe.NewGameController(
		logger,
		console.NewReader(in),
		console.NewRenderer(out, !conf.NoColors),
	)

	resultCh := make(chan *tictactoe.Result, 1)
	errCh := make(chan error, 1)
	go func() {
		result, err := controller.Play(ctx)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- result
	}()

	select {
	case result := <-resultCh:
		log.Info("Game finished", "winner", result.Winner.String(), "draw", result.Draw, "turns", result.Turns)
		return nil
	case err := <-errCh:
		if errors.Is(err, context.Canceled) {
			log.Info("Game interrupted")
			return nil
		}
		return fmt.Errorf("game failed: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
