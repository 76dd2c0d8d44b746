package bfs_test

import (
	"fmt"

	"github.com/jbraz05/Spotify-Graph-Explorer/bfs"
	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// ExampleBFS lists artists in order of collaboration distance from a seed artist.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("Bad Bunny", "Jhay Cortez", 1)
	g.AddEdge("Bad Bunny", "Drake", 1)
	g.AddEdge("Drake", "Future", 1)
	g.AddEdge("Future", "The Weeknd", 1)

	res, err := bfs.BFS(g, "Bad Bunny")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth["The Weeknd"])
	// Output:
	// [Bad Bunny Drake Jhay Cortez Future The Weeknd]
	// 3
}
