package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (tetris when omitted).

Controls:
  Left/A/H       - Move left
  Right/D/L      - Move right
  Down/S/J       - Soft drop
  Up/W/X/K       - Rotate clockwise
  Z              - Rotate counter-clockwise
  Space          - Hard drop
  C              - Hold
  P/Esc          - Pause
  R              - Restart (after game over)
  B              - Leave (paused or game over)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start, gentle speed-up
  normal - Values from the config
  hard   - Faster start
  fixed  - Gravity never speeds up

Examples:
  blockfall play
  blockfall play tetris_bag
  blockfall play --difficulty hard
  blockfall play --seed 42 --sound=false
  blockfall play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(io.Discard, "blockfall")
	defer closeLog()
	configureGames(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := localOptions(logger)
	_, runErr := tui.Run(game, opts, runtimeConfig())
	closeOptions(opts)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
