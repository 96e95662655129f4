package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsFrogger(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "frogger") || !strings.Contains(out, "Frogger") {
		t.Errorf("list output = %q", out)
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "canvas:") || !strings.Contains(out, "traffic:") {
		t.Errorf("config output = %q", out)
	}
}

func TestReplayFromStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	g, err := frogger.NewWithConfig(mustDefaultLayout(t))
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.DefaultConfig())
	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		input.Clear()
		if i%10 == 0 {
			input.Set(core.ActionUp)
		}
		g.Step(input)
	}
	data, err := g.ReplayYAML()
	if err != nil {
		t.Fatal(err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	id, err := store.SaveRun(storage.RunEntry{GameID: "frogger", Score: g.State().Score, Ticks: g.Ticks(), Replay: data})
	store.Close()
	if err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "replay", "--db", dbPath, itoa(id))
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !strings.Contains(out, "Ticks:    "+itoa(int64(g.Ticks()))) {
		t.Errorf("replay output = %q, want %d ticks", out, g.Ticks())
	}
}

func TestReplayRejectsOtherLayout(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		flagConfig = ""
		flagReplayFile = ""
		frogger.SetConfigPath("")
	})

	g, err := frogger.NewWithConfig(mustDefaultLayout(t))
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.DefaultConfig())
	g.Step(core.NewInputFrame())
	data, err := g.ReplayYAML()
	if err != nil {
		t.Fatal(err)
	}
	replayPath := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(replayPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	other := mustDefaultLayout(t)
	other.Rewards.Door *= 2
	layoutData, err := yaml.Marshal(other)
	if err != nil {
		t.Fatal(err)
	}
	layoutPath := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(layoutPath, layoutData, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = execute(t, "replay", "--file", replayPath, "--config", layoutPath)
	if !errors.Is(err, frogger.ErrBadReplay) {
		t.Errorf("replay on another layout error = %v, want ErrBadReplay", err)
	}
}

func TestReplayNeedsSource(t *testing.T) {
	if _, err := execute(t, "replay", "--db", filepath.Join(t.TempDir(), "x.db")); err == nil {
		t.Error("replay without id or file should fail")
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func mustDefaultLayout(t *testing.T) config.FroggerConfig {
	t.Helper()
	cfg := config.DefaultFroggerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}
