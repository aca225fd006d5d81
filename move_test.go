package cubekit

import (
	"errors"
	"testing"
)

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{R, "R"},
		{RPrime, "R'"},
		{R2, "R2"},
		{U, "U"},
		{BPrime, "B'"},
		{D2, "D2"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if got := R.Inverse(); got != RPrime {
		t.Errorf("R inverse = %v, want R'", got)
	}
	if got := RPrime.Inverse(); got != R {
		t.Errorf("R' inverse = %v, want R", got)
	}
	if got := R2.Inverse(); got != R2 {
		t.Errorf("R2 inverse = %v, want R2", got)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u", U},
		{"f'", FPrime},
		{" L2 ", L2},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "RR", "2"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) err = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestParseMovesStrict(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("got %d moves, want 4", len(moves))
	}

	if _, err := ParseMoves("R U X U'"); err == nil {
		t.Error("sequence with a bad token should fail")
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	in := "R U2 F' L D' B2"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves = %q, want %q", got, in)
	}
}

func TestInvertMoves(t *testing.T) {
	moves := []Move{R, U, FPrime, D2}
	inv := InvertMoves(moves)
	want := []Move{D2, F, UPrime, RPrime}
	if len(inv) != len(want) {
		t.Fatalf("got %d moves, want %d", len(inv), len(want))
	}
	for i := range want {
		if inv[i] != want[i] {
			t.Errorf("inv[%d] = %v, want %v", i, inv[i], want[i])
		}
	}
}
