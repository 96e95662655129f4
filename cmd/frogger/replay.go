package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagReplayFile string
	flagExport     string
)

var replayCmd = &cobra.Command{
	Use:   "replay [run-id]",
	Short: "Re-run a recorded game and print its result",
	Long: `Feed a recorded event log back through the simulation. The result is
identical to the original game because the simulation is deterministic.

Load the recording from the scores database by run id, or from a YAML file.
Use the same --config the game was played with; a recording made on another
layout is rejected.

Examples:
  frogger replay 12
  frogger replay --file run.yaml
  frogger replay 12 --export run.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayFile, "file", "", "Read the replay from a YAML file")
	replayCmd.Flags().StringVar(&flagExport, "export", "", "Write the loaded replay to a YAML file")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := loadReplay(args)
	if err != nil {
		return err
	}

	// A recording only replays on the layout it was played on
	layout, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return err
	}
	events, err := frogger.DecodeReplay(layout, data)
	if err != nil {
		return err
	}

	if flagExport != "" {
		if err := os.WriteFile(flagExport, data, 0o644); err != nil {
			return fmt.Errorf("replay: cannot export: %w", err)
		}
		logger.Info("replay exported", "path", flagExport)
	}

	engine, err := frogger.NewEngine(layout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ch := make(chan frogger.Event)
	go func() {
		defer close(ch)
		for _, ev := range events {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	doors := 0
	final, err := frogger.Drive(ctx, engine, engine.Initial(), ch, func(s frogger.State) {
		if len(s.DoorSuccess) != doors {
			doors = len(s.DoorSuccess)
			logger.Debug("door filled", "tick", s.Time, "score", s.Score, "doors", doors)
		}
	})
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Events:   %d\n", len(events))
	fmt.Fprintf(out, "Ticks:    %d\n", final.Time)
	fmt.Fprintf(out, "Score:    %d\n", final.Score)
	fmt.Fprintf(out, "Doors:    %d/%d\n", len(final.DoorSuccess), len(final.Slots()))
	fmt.Fprintf(out, "Game end: %t\n", final.GameEnd)
	return nil
}

// loadReplay reads the recording from --file or from the store by run id.
func loadReplay(args []string) ([]byte, error) {
	if flagReplayFile != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("replay: give a run id or --file, not both")
		}
		data, err := os.ReadFile(flagReplayFile)
		if err != nil {
			return nil, fmt.Errorf("replay: cannot read %s: %w", flagReplayFile, err)
		}
		return data, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("replay: need a run id or --file")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("replay: bad run id %q: %w", args[0], err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded run", "run", run.ID, "player", run.Player, "score", run.Score, "ticks", run.Ticks)
	return run.Replay, nil
}
