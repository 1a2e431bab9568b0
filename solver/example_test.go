package solver_test

import (
	"fmt"

	"github.com/sokotools/sokosolve/board"
	"github.com/sokotools/sokosolve/solver"
)

// ExampleSolve solves a tiny corridor level push-optimally and prints the
// solution in LURD notation (uppercase letters are pushes).
func ExampleSolve() {
	b, err := board.Parse("######\n#@$ .#\n######", board.FormatXSB)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	res, err := solver.Solve(b, solver.WithMoves())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Printf("%d pushes, %d moves\n", res.Path.Pushes(), res.Path.Moves())
	// Output:
	// RR
	// 2 pushes, 2 moves
}

// ExampleSolve_unsolvable shows that an unsolvable level is a result, not
// an error: the drained open set is the proof.
func ExampleSolve_unsolvable() {
	b, err := board.Parse("#######\n#@$$..#\n#######", board.FormatXSB)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	res, err := solver.Solve(b)
	fmt.Println("err:", err)
	fmt.Println("solved:", res.Solved)
	// Output:
	// err: <nil>
	// solved: false
}
