package synth_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/biopath/graph"
	"github.com/katalvlaran/biopath/synth"
)

func Example() {
	g, seeds, err := synth.GenerateBipartite(
		synth.WithSeed(1),
		synth.WithSeedCount(1),
		synth.WithLayers(2),
		synth.WithBranching(1),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	seedList := make([]string, 0, len(seeds))
	for s := range seeds {
		seedList = append(seedList, s)
	}
	sort.Strings(seedList)

	fmt.Println(seedList)
	fmt.Println(len(g.NodesOfClass(graph.ClassReaction)))
	// Output:
	// [m0_0]
	// 2
}
