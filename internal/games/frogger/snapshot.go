package frogger

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Tick        int
	Score       int
	ExtraLife   int
	FrogX       float64
	FrogY       float64
	DoorsFilled int
	Died        bool // Result of the last tick
	GameEnd     bool
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.state.Time,
		Score:       g.state.Score,
		ExtraLife:   g.state.ExtraLife,
		FrogX:       g.state.Frog.Pos.X,
		FrogY:       g.state.Frog.Pos.Y,
		DoorsFilled: len(g.state.DoorSuccess),
		Died:        g.lastOut.Died,
		GameEnd:     g.state.GameEnd,
		Paused:      g.paused,
	}
}
