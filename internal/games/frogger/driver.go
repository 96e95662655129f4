package frogger

import "context"

// Drive folds events from the channel into states one at a time, in the
// order they arrive, handing every new state to sink. It stops when the
// game ends, when the channel is closed or when ctx is cancelled; the
// producer is never told, it simply stops being read.
func Drive(ctx context.Context, e *Engine, initial State, events <-chan Event, sink func(State)) (State, error) {
	s := initial
	if s.GameEnd {
		return s, nil
	}

	for {
		select {
		case <-ctx.Done():
			return s, ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return s, nil
			}
			s = e.Reduce(s, ev)
			if sink != nil {
				sink(s)
			}
			if s.GameEnd {
				return s, nil
			}
		}
	}
}

// Replay folds a recorded event sequence, stopping early if the game ends.
func Replay(e *Engine, initial State, events []Event) State {
	s := initial
	for _, ev := range events {
		if s.GameEnd {
			break
		}
		s = e.Reduce(s, ev)
	}
	return s
}
