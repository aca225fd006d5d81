package cubekit

import "errors"

// Sentinel errors for the cubekit package.
var (
	// Notation errors
	ErrInvalidNotation = errors.New("cubekit: invalid move notation")
	ErrBadCubeString   = errors.New("cubekit: malformed cube string")
	ErrUnmappedColor   = errors.New("cubekit: facelet color has no notation letter")

	// Solver errors
	ErrUnsolvable        = errors.New("cubekit: configuration is unsolvable")
	ErrSolverUnavailable = errors.New("cubekit: solver service unavailable")
)
