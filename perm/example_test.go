package perm_test

import (
	"fmt"

	"github.com/tutils/tperm/entropy"
	"github.com/tutils/tperm/perm"
)

func ExampleGenerator() {
	g := perm.New(9, perm.WithSource(entropy.NewPCGSource(2024)))

	seen := make(map[uint64]bool)
	for i := 0; i < 10; i++ {
		v := g.Next()
		seen[v] = true
		if g.Undo(v) != uint64(i) {
			fmt.Println("undo mismatch")
		}
	}
	fmt.Println(len(seen), g.Position())
	// Output: 10 0
}

func ExampleGenerator_UndoChecked() {
	g := perm.New(100)
	_, err := g.UndoChecked(101)
	fmt.Println(err)
	// Output: perm: value out of range
}
