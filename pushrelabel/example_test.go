package pushrelabel_test

import (
	"fmt"

	"github.com/katalvlaran/maxflow/flownet"
	"github.com/katalvlaran/maxflow/pushrelabel"
)

// ExampleSolver_MaxFlow demonstrates max-flow on two disjoint paths.
// Graph:
//
//	0→1(10)→3
//	0→2(10)→3
//
// Expected max-flow = 10 + 10 = 20
func ExampleSolver_MaxFlow() {
	net := flownet.New(4)
	net.AddEdge(0, 1, 10)
	net.AddEdge(0, 2, 10)
	net.AddEdge(1, 3, 10)
	net.AddEdge(2, 3, 10)

	fmt.Println(pushrelabel.New(net).MaxFlow(0, 3))
	// Output:
	// 20
}

// ExampleSolver_MaxFlow_bottleneck demonstrates a chain throttled by a
// single unit-capacity arc.
// Graph: 0→1(100)→2(1)→3(100); the middle arc caps the whole chain.
func ExampleSolver_MaxFlow_bottleneck() {
	net := flownet.New(4)
	net.AddEdge(0, 1, 100)
	net.AddEdge(1, 2, 1)
	net.AddEdge(2, 3, 100)

	fmt.Println(pushrelabel.New(net).MaxFlow(0, 3))
	// Output:
	// 1
}
