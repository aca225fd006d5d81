// Package cubekit models a 3x3x3 twisty puzzle as a grid of colored
// facelets and applies the standard face turns to it.
//
// # Features
//
//   - Facelet-level cube state with a paintable (face, row, col) surface
//   - Move engine for the 18 standard face turns (R, R', R2, ...)
//   - Validation of solver-ready configurations
//   - 54-character solver notation encode/decode
//   - Solving phase detection and move tracking
//   - Client for an external two-phase search solver service
//
// # Quick Start
//
// Build a cube and apply moves:
//
//	cube := cubekit.NewSolved()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubekit.R, cubekit.U, cubekit.RPrime, cubekit.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Painting a Configuration
//
// A cube starts with every facelet unset and can be colored one facelet
// at a time, the way an interactive grid would drive it:
//
//	cube := cubekit.New()
//	cube.Set(cubekit.Up, 0, 0, cubekit.White)
//	// ... paint the remaining 53 facelets ...
//
//	if ok, diag := cube.Validate(); !ok {
//	    fmt.Println("not solvable yet:", diag)
//	}
//
// # External Solver
//
// Finding an optimal solution is delegated to an external search solver
// that speaks the 54-character facelet notation:
//
//	client := cubekit.NewSolverClient("http://localhost:5000")
//	moves, err := client.Solve(ctx, cube)
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubekit.R      // Right clockwise
//	cubekit.RPrime // Right counter-clockwise
//	cubekit.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package cubekit
