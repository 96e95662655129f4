package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Outcome describes what the scoring pass decided for one tick.
type Outcome struct {
	Filled   bool // The frog filled a goal slot
	Slot     int  // Index of the filled slot in DoorSec[0], valid when Filled
	AllDoors bool // The fill completed every slot
	Died     bool // The frog was on something deadly, fatal or not
	GameOver bool // The death was fatal and the game has ended
}

// Resolve applies door fills, death and game over to a state whose bodies
// have already moved this tick. At most one fill is recognised per tick.
func (r Rules) Resolve(s State) (State, Outcome) {
	var out Outcome

	if slot := r.findFill(s); slot >= 0 {
		flag := flagFor(s.DoorSec[0][slot])
		// Full slice expression forces a copy so the previous state keeps its own backing array
		s.DoorSuccess = append(s.DoorSuccess[:len(s.DoorSuccess):len(s.DoorSuccess)], flag)
		s.Score += r.DoorReward
		if len(s.DoorSuccess) == len(s.DoorSec[0]) {
			s.Score += r.AllDoorsBonus
			out.AllDoors = true
		}
		s.Frog = r.respawn(s.Frog)

		out.Filled = true
		out.Slot = slot
		return s, out
	}

	out.Died = r.diedThisTick(s)

	// A death only matters when no life is left; otherwise nothing changes,
	// not even the life count.
	if out.Died && s.ExtraLife-1 < 0 {
		s.GameEnd = true
		out.GameOver = true
	}
	return s, out
}

// findFill returns the index of the first open, unfilled goal slot the frog
// overlaps, or -1.
func (r Rules) findFill(s State) int {
	if !r.InDoorBand(s.Frog) {
		return -1
	}
	for i, slot := range s.Slots() {
		if slot.Kind != KindDoorOpen || !Overlaps(s.Frog, slot) {
			continue
		}
		if s.Filled(slot.ID) {
			continue
		}
		return i
	}
	return -1
}

func (r Rules) diedThisTick(s State) bool {
	frog := s.Frog
	switch {
	case r.InDoorBand(frog):
		return overlapsKind(frog, s.DoorSec, KindDoorClosed) && !overlapsKind(frog, s.DoorSec, KindDoorOpen)
	case r.InRiverBand(frog):
		return !CollidesWithAny(frog, s.RiverSec)
	case r.InTrafficBand(frog):
		return CollidesWithAny(frog, s.TrafficSec)
	default:
		return false
	}
}

func (r Rules) respawn(frog Body) Body {
	frog.Pos = r.Start
	frog.Vel = core.Zero
	return frog
}
