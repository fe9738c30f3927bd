package postman_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/postman"
)

// ExampleSolve walks the square with a heavy diagonal: the odd corners A
// and C are joined through B instead of re-using the diagonal.
func ExampleSolve() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("D", "A", 1)
	_ = g.AddEdge("A", "C", 5)

	res, err := postman.Solve(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("matching:", res.Pairing)
	fmt.Println("tour:", res.Circuit)

	// Output:
	// cost: 11
	// matching: (A,C)
	// tour: [A B A C B C D A]
}
