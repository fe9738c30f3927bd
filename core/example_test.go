package core_test

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// ExampleGraph builds the square-with-diagonal graph used throughout the
// postman docs and inspects its parity.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("D", "A", 1)
	_ = g.AddEdge("A", "C", 5)

	fmt.Println("degree(A):", g.Degree("A"))
	fmt.Println("odd:", g.OddDegreeVertices())
	fmt.Println("connected:", g.IsConnected())
	fmt.Println("total weight:", g.TotalWeight())

	// Output:
	// degree(A): 3
	// odd: [A C]
	// connected: true
	// total weight: 9
}
