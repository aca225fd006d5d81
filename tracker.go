package cubekit

// Tracker wraps a Cube, records the moves applied to it, and detects
// phase transitions. Callers mutating the same Tracker from multiple
// goroutines must serialize access themselves.
type Tracker struct {
	cube          *Cube
	moves         []Move
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase)
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker() *Tracker {
	return &Tracker{
		cube:      NewSolved(),
		lastPhase: PhaseSolved,
	}
}

// SetPhaseCallback sets a callback that fires when a new phase milestone
// is reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset restores a solved cube and clears the move history.
func (t *Tracker) Reset() {
	t.cube = NewSolved()
	t.moves = nil
	t.lastPhase = PhaseSolved
	t.highestPhase = PhaseScrambled
}

// ApplyMove applies a move, records it, and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.Apply(m)
	t.moves = append(t.moves, m)
	t.checkPhaseTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// checkPhaseTransition fires the callback when a new highest phase is
// reached. Phase values are ordered, so progress is monotonic: once a
// phase has been reached the callback never re-fires for it.
func (t *Tracker) checkPhaseTransition() {
	current := t.cube.DetectPhase()
	t.lastPhase = current

	if current > t.highestPhase {
		t.highestPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current)
		}
	}
}

// CurrentPhase returns the phase of the cube as it stands. It may go
// backwards during solving.
func (t *Tracker) CurrentPhase() Phase {
	return t.cube.DetectPhase()
}

// HighestPhase returns the highest phase reached since the last reset.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// Moves returns the moves applied since the last reset.
func (t *Tracker) Moves() []Move {
	return t.moves
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
