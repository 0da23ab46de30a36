package pong

import "testing"

// TestCollides verifies the strict separating-axis overlap test
func TestCollides(t *testing.T) {
	paddle := &Paddle{X: 790, Y: 150, Width: 10, Height: 100}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Overlap center", 785, 200, true},
		{"Touching left face", 780, 200, false},
		{"Just inside left face", 780.5, 200, true},
		{"Above paddle", 795, 139, false},
		{"Touching top", 795, 140, false},
		{"Corner overlap", 785, 145, true},
		{"Below paddle", 795, 261, false},
		{"Past right face", 811, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := &Ball{X: tt.x, Y: tt.y, Radius: 10}
			if got := Collides(ball, paddle); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestHitOffset verifies normalization against the paddle half height
func TestHitOffset(t *testing.T) {
	paddle := &Paddle{Y: 100, Height: 100}

	tests := []struct {
		y    float64
		want float64
	}{
		{150, 0},
		{100, -1},
		{200, 1},
		{125, -0.5},
	}

	for _, tt := range tests {
		if got := HitOffset(&Ball{Y: tt.y}, paddle); got != tt.want {
			t.Errorf("y=%v: expected offset %v, got %v", tt.y, tt.want, got)
		}
	}
}

// TestNetDashes verifies dash placement down the court
func TestNetDashes(t *testing.T) {
	net := Net{DashPeriod: 15, DashHeight: 10, Width: 2}

	tops := net.Dashes(400)
	if len(tops) != 27 {
		t.Fatalf("Expected 27 dashes, got %d", len(tops))
	}
	if tops[0] != 0 || tops[26] != 390 {
		t.Errorf("Expected dashes from 0 to 390, got %v to %v", tops[0], tops[26])
	}

	if got := (Net{}).Dashes(400); got != nil {
		t.Errorf("Expected no dashes for zero period, got %v", got)
	}
}

// TestSideOpponent verifies side helpers
func TestSideOpponent(t *testing.T) {
	if Left.Opponent() != Right || Right.Opponent() != Left {
		t.Error("Opponent mismatch")
	}
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("Unexpected names %q %q", Left.String(), Right.String())
	}
}
