package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/audio"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const gameID = "frogger"

var (
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows / WASD / hjkl  - Hop
  P/Esc                 - Pause
  R                     - Restart (after game over)
  Ctrl+S                - Save a text screenshot
  Q/Ctrl+C              - Quit

Every finished game is stored with its replay; see 'frogger scores'.

Examples:
  frogger play
  frogger play --sound --volume 0.3
  frogger play --config ./my-layout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := tui.Options{}
	if flagSound {
		sounds := audio.NewSoundManager(0, flagVolume)
		if err := sounds.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sounds.Cleanup()
			opts.Sounds = sounds
		}
	}

	logger.Debug("starting game", "fps", flagFPS, "width", width, "height", height)
	final, err := tui.Run(game, store, cfg, opts)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	if saveErr := final.SaveErr(); saveErr != nil {
		logger.Warn("could not save result", "error", saveErr)
	}
	if id := final.RunID(); id != 0 {
		logger.Info("run saved", "run", id, "replay", fmt.Sprintf("frogger replay %d", id))
	}
	return nil
}
