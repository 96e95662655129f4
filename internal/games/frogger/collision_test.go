package frogger

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Body
		want bool
	}{
		{"same spot", body("a", KindFrog, 100, 300, 50, 0), body("b", KindCar, 100, 300, 50, 0), true},
		{"partial", body("a", KindFrog, 100, 300, 50, 0), body("b", KindCar, 140, 300, 50, 0), true},
		{"touching edges", body("a", KindFrog, 100, 300, 50, 0), body("b", KindCar, 150, 300, 50, 0), false},
		{"apart", body("a", KindFrog, 275, 550, 50, 0), body("b", KindCar, 1, 550, 50, 0), false},
		{"contained", body("a", KindFrog, 120, 100, 50, 0), body("b", KindWood, 100, 100, 160, 0), true},
		{"different rows", body("a", KindFrog, 100, 300, 50, 0), body("b", KindCar, 100, 350, 50, 0), false},
		{"rows overlap but differ", body("a", KindFrog, 100, 300, 50, 0), body("b", KindCar, 100, 310, 50, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollidesWithAny(t *testing.T) {
	frog := body(frogID, KindFrog, 250, 300, 50, 0)
	lanes := []Lane{
		{body("car-1-0", KindCar, 0, 300, 50, 0), body("car-1-1", KindCar, 400, 300, 50, 0)},
		{body("van-2-0", KindVan, 250, 350, 100, 0)},
	}

	if CollidesWithAny(frog, lanes) {
		t.Error("frog should not collide with any body")
	}

	lanes[0] = append(lanes[0], body("car-1-2", KindCar, 270, 300, 50, 0))
	if !CollidesWithAny(frog, lanes) {
		t.Error("frog should collide with car-1-2")
	}

	if CollidesWithAny(frog, nil) {
		t.Error("no lanes means no collision")
	}
}
