package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/dsubench/dsu"
)

// ExampleNewOptimized walks the three-element scenario: 0-1 then 1-2.
func ExampleNewOptimized() {
	set, err := dsu.NewOptimized(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	set.AddEdge(0, 1)
	fmt.Println(set.IsConnected(), set.SetCount())
	set.AddEdge(1, 2)
	fmt.Println(set.IsConnected(), set.Find(0) == set.Find(2))
	// Output:
	// false 1
	// true true
}

func ExampleParseStrategy() {
	s, _ := dsu.ParseStrategy("naive")
	set, _ := dsu.New(s, 2)
	set.AddEdge(0, 1)
	fmt.Println(s, set.IsConnected())
	// Output: naive true
}
