package incidence_test

import (
	"fmt"

	"github.com/katalvlaran/biopath/graph"
	"github.com/katalvlaran/biopath/incidence"
)

func Example() {
	g := graph.NewGraph()
	_ = g.AddMetabolite("s")
	_ = g.AddMetabolite("a")
	_ = g.AddReaction("R1")
	_ = g.AddEdge("s", "R1")
	_ = g.AddEdge("R1", "a")

	inc, err := incidence.Build(g)
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := inc.At("s", "R1")
	fmt.Println(v)
	v, _ = inc.At("a", "R1")
	fmt.Println(v)
	// Output:
	// -1
	// 1
}
