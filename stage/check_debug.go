//go:build tpermdebug

package stage

import (
	"fmt"

	"github.com/tutils/tperm/gf2"
)

func checkPair(p Pair) {
	if p.Forward.Mult&1 == 0 {
		panic(fmt.Sprintf("stage: even multiplier %#x", p.Forward.Mult))
	}
	if (p.Forward.Mult*p.Inverse.Mult)&p.mask != 1 {
		panic(fmt.Sprintf("stage: %#x is not the inverse of %#x", p.Inverse.Mult, p.Forward.Mult))
	}
	if !gf2.Multiply(p.Forward.Matrix, p.Inverse.Matrix).IsIdentity() {
		panic(fmt.Sprintf("stage: matrix inverse mismatch\n%s", p.Forward.Matrix))
	}
}
