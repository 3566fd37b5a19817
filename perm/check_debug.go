//go:build tpermdebug

package perm

import "fmt"

func checkUndo(g *Generator, x uint64) {
	if x > g.max {
		panic(fmt.Sprintf("perm: Undo(%#x) above max %#x", x, g.max))
	}
}
