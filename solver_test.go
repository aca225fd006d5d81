package cubekit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newSolverStub(t *testing.T, handler func(req solveRequest) solveResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/solve" {
			http.NotFound(w, r)
			return
		}
		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(handler(req))
	}))
}

func TestSolverClientSolve(t *testing.T) {
	var received string
	srv := newSolverStub(t, func(req solveRequest) solveResponse {
		received = req.Cube
		return solveResponse{Success: true, Solution: []string{"R", "U'", "F2"}}
	})
	defer srv.Close()

	c := NewSolved()
	c.ApplyMoves([]Move{F2, U, RPrime})

	client := NewSolverClient(srv.URL)
	moves, err := client.Solve(context.Background(), c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want, _ := c.Notation()
	if received != want {
		t.Errorf("service received %q, want %q", received, want)
	}

	expected := []Move{R, UPrime, F2}
	if len(moves) != len(expected) {
		t.Fatalf("got %d moves, want %d", len(moves), len(expected))
	}
	for i := range expected {
		if moves[i] != expected[i] {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], expected[i])
		}
	}
}

func TestSolverClientUnsolvable(t *testing.T) {
	srv := newSolverStub(t, func(req solveRequest) solveResponse {
		return solveResponse{Success: false, Error: "could not solve the cube"}
	})
	defer srv.Close()

	client := NewSolverClient(srv.URL)
	_, err := client.SolveNotation(context.Background(), SolvedNotation)
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("err = %v, want ErrUnsolvable", err)
	}
}

func TestSolverClientRejectsInvalidCube(t *testing.T) {
	srv := newSolverStub(t, func(req solveRequest) solveResponse {
		t.Error("service should not be called for an invalid cube")
		return solveResponse{}
	})
	defer srv.Close()

	client := NewSolverClient(srv.URL)
	_, err := client.Solve(context.Background(), New())
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("err = %v, want ErrUnsolvable", err)
	}
}

func TestSolverClientUnavailable(t *testing.T) {
	srv := newSolverStub(t, nil)
	srv.Close() // connection refused

	client := NewSolverClient(srv.URL)
	_, err := client.SolveNotation(context.Background(), SolvedNotation)
	if !errors.Is(err, ErrSolverUnavailable) {
		t.Errorf("err = %v, want ErrSolverUnavailable", err)
	}
}

func TestSolverClientContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewSolverClient(srv.URL)
	_, err := client.SolveNotation(ctx, SolvedNotation)
	if err == nil {
		t.Error("cancelled context should fail the solve")
	}
}
