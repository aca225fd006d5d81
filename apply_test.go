package cubekit

import "testing"

func allMoves() []Move {
	var moves []Move
	for _, f := range Faces {
		for _, turn := range []Turn{CW, CCW, Double} {
			moves = append(moves, Move{Face: f, Turn: turn})
		}
	}
	return moves
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewSolved()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("cube should not be solved after R")
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	for _, m := range allMoves() {
		c := NewSolved()
		c.Apply(m)
		c.Apply(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("%s then %s should restore solved", m, m.Inverse())
			t.Log(c.String())
		}
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, f := range Faces {
		c := NewSolved()
		for i := 0; i < 4; i++ {
			c.Apply(Move{Face: f, Turn: CW})
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", f)
			t.Log(c.String())
		}
	}
}

func TestDoubleTwiceIsIdentity(t *testing.T) {
	for _, f := range Faces {
		c := NewSolved()
		c.Apply(Move{Face: f, Turn: Double})
		c.Apply(Move{Face: f, Turn: Double})
		if !c.IsSolved() {
			t.Errorf("%v2 x 2 should return to solved", f)
			t.Log(c.String())
		}
	}
}

func TestDoubleEqualsTwoQuarterTurns(t *testing.T) {
	for _, f := range Faces {
		a := NewSolved()
		a.ApplyMoves([]Move{U, R, F}) // start from a non-trivial position
		b := a.Clone()

		a.Apply(Move{Face: f, Turn: Double})
		b.Apply(Move{Face: f, Turn: CW})
		b.Apply(Move{Face: f, Turn: CW})

		if a.Grid != b.Grid {
			t.Errorf("%v2 should equal two %v quarter turns", f, f)
		}
	}
}

func TestMovesPreserveColorMultiset(t *testing.T) {
	count := func(c *Cube) [7]int {
		var counts [7]int
		for _, f := range Faces {
			for r := 0; r < 3; r++ {
				for col := 0; col < 3; col++ {
					counts[c.Grid[f][r][col]]++
				}
			}
		}
		return counts
	}

	// Include a partially painted cube: unset facelets permute like any
	// other value.
	partial := New()
	partial.Set(Front, 0, 0, Red)
	partial.Set(Up, 2, 1, Green)

	for _, start := range []*Cube{NewSolved(), partial} {
		before := count(start)
		for _, m := range allMoves() {
			c := start.Clone()
			c.Apply(m)
			if got := count(c); got != before {
				t.Errorf("%s changed the color multiset: %v -> %v", m, before, got)
			}
		}
	}
}

func TestSexyMovePeriodIsSix(t *testing.T) {
	// R U R' U' has order 6. Record the grid after each repetition and
	// assert return-to-original exactly at 6.
	c := NewSolved()
	original := c.Grid

	for i := 1; i <= 6; i++ {
		c.ApplyMoves(SexyMove)
		if i < 6 && c.Grid == original {
			t.Fatalf("sexy move returned to start early, after %d repetitions", i)
		}
	}
	if c.Grid != original {
		t.Error("sexy move x 6 should return to the original arrangement")
		t.Log(c.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	c := NewSolved()

	scramble := []Move{R, U, RPrime, UPrime, F, D, L2, BPrime, U2}
	c.ApplyMoves(scramble)
	if c.IsSolved() {
		t.Fatal("cube should be scrambled")
	}

	c.ApplyMoves(InvertMoves(scramble))
	if !c.IsSolved() {
		t.Error("reversing the scramble should restore solved")
		t.Log(c.String())
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewSolved()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	if c.IsSolved() {
		t.Error("cube should not be solved after R U R' U'")
	}

	before := c.Grid
	if err := c.ApplyNotation("R U X'"); err == nil {
		t.Error("invalid token should fail")
	}
	if c.Grid != before {
		t.Error("failed ApplyNotation should not mutate the cube")
	}
}

// TestBorderTableIsBijection checks the move tables mechanically: every
// move must touch each facelet position at most once as a destination.
func TestBorderTableIsBijection(t *testing.T) {
	for _, f := range Faces {
		seen := map[[3]int]bool{}
		for _, s := range borderCycles[f] {
			if s.face == f {
				t.Errorf("border cycle of %v includes its own face", f)
			}
			for _, cl := range s.cells {
				key := [3]int{int(s.face), cl.row, cl.col}
				if seen[key] {
					t.Errorf("border cycle of %v repeats cell %v", f, key)
				}
				seen[key] = true
			}
		}
		if len(seen) != 12 {
			t.Errorf("border cycle of %v covers %d cells, want 12", f, len(seen))
		}
	}
}
