package factorgraph_test

import (
	"fmt"

	"github.com/katalvlaran/rankit/factorgraph"
)

// ExampleGraph_solve pushes a single "1 beat 0" observation and solves it.
// The posterior mean separates in the direction of the observation; the
// posterior variance converges to a fixed point set by the message
// precision contributed by that one comparison (spec.md §4.3).
func ExampleGraph_solve() {
	g := factorgraph.New(2)
	if err := g.Push(1, 0); err != nil {
		panic(err)
	}

	means, variances, err := g.Solve(true)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f %.4f\n", means[0], means[1])
	fmt.Printf("%.4f %.4f\n", variances[0], variances[1])
	// Output:
	// -3.9696 3.9696
	// 34.2421 34.2421
}

// ExampleGraph_solveOne probes a hypothetical comparison without mutating
// the graph: the returned posterior reflects the counterfactual factor, but
// a subsequent Solve reproduces the pre-probe state exactly.
func ExampleGraph_solveOne() {
	g := factorgraph.New(3)
	if err := g.Push(1, 0); err != nil {
		panic(err)
	}
	if _, _, err := g.Solve(true); err != nil {
		panic(err)
	}

	probedMeans, _, err := g.SolveOne(2, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("probed mean for 2: %.4f\n", probedMeans[2])

	committedMeans := g.Means()
	fmt.Printf("committed mean for 2: %.4f\n", committedMeans[2])
	// Output:
	// probed mean for 2: 2.9559
	// committed mean for 2: 0.0000
}
