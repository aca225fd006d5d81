package cubekit

import (
	"errors"
	"strings"
	"testing"
)

func TestSolvedNotation(t *testing.T) {
	c := NewSolved()
	got, err := c.Notation()
	if err != nil {
		t.Fatalf("Notation: %v", err)
	}
	if got != SolvedNotation {
		t.Errorf("solved notation = %q, want %q", got, SolvedNotation)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	c := NewSolved()
	c.ApplyMoves([]Move{R, U2, FPrime, L, D, BPrime, R2})

	s, err := c.Notation()
	if err != nil {
		t.Fatalf("Notation: %v", err)
	}

	back, err := FromNotation(s)
	if err != nil {
		t.Fatalf("FromNotation: %v", err)
	}
	if back.Grid != c.Grid {
		t.Error("FromNotation(Notation(c)) should reproduce c exactly")
	}
}

func TestNotationFailsOnUnset(t *testing.T) {
	c := NewSolved()
	c.Set(Back, 2, 2, Unset)
	_, err := c.Notation()
	if !errors.Is(err, ErrUnmappedColor) {
		t.Errorf("err = %v, want ErrUnmappedColor", err)
	}
}

func TestFromNotationBadLength(t *testing.T) {
	_, err := FromNotation(SolvedNotation[:53])
	if !errors.Is(err, ErrBadCubeString) {
		t.Errorf("err = %v, want ErrBadCubeString", err)
	}
}

func TestFromNotationBadCharacter(t *testing.T) {
	bad := "X" + SolvedNotation[1:]
	_, err := FromNotation(bad)
	if !errors.Is(err, ErrBadCubeString) {
		t.Errorf("err = %v, want ErrBadCubeString", err)
	}
}

func TestDecodeNotationLeavesStateOnError(t *testing.T) {
	c := NewSolved()
	c.Apply(R)
	before := c.Grid

	if err := c.DecodeNotation(strings.Repeat("U", 54)[:53]); err == nil {
		t.Fatal("short string should fail")
	}
	if c.Grid != before {
		t.Error("failed decode must leave the previous state untouched")
	}

	if err := c.DecodeNotation(strings.Repeat("X", 54)); err == nil {
		t.Fatal("bad alphabet should fail")
	}
	if c.Grid != before {
		t.Error("failed decode must leave the previous state untouched")
	}
}

func TestDecodeNotationFaceOrder(t *testing.T) {
	// One face letter per block of nine: decoded faces must come back
	// in U, R, F, D, L, B order with the canonical colors.
	c, err := FromNotation(SolvedNotation)
	if err != nil {
		t.Fatalf("FromNotation: %v", err)
	}
	want := map[Face]Color{
		Up: White, Right: Red, Front: Blue,
		Down: Yellow, Left: Orange, Back: Green,
	}
	for f, color := range want {
		if got := c.Get(f, 1, 1); got != color {
			t.Errorf("center of %v = %v, want %v", f, got, color)
		}
	}
}

func TestNotationAfterMovesStillValid(t *testing.T) {
	// A 54-char encoding of any move-reachable state keeps 9 of each letter.
	c := NewSolved()
	c.ApplyMoves([]Move{F, R, U, RPrime, UPrime, FPrime, D2, L})
	s, err := c.Notation()
	if err != nil {
		t.Fatalf("Notation: %v", err)
	}
	for _, ch := range []string{"U", "R", "F", "D", "L", "B"} {
		if n := strings.Count(s, ch); n != 9 {
			t.Errorf("letter %s appears %d times, want 9", ch, n)
		}
	}
}
