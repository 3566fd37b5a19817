// Command clib builds tperm as a C shared library:
//
//	go build -buildmode=c-shared -o libtperm.so ./apps/clib
//
// Generators are handed to C as opaque handles and must be released with
// TpermFree. A handle is not safe for concurrent use.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/tutils/tperm/cmd"
	"github.com/tutils/tperm/entropy"
	"github.com/tutils/tperm/perm"
)

// TpermRun runs the tperm command line and returns 0 on success or 1 on
// error. Unlike the tperm binary it never exits the process.
//
//export TpermRun
func TpermRun(cargs **C.char, size C.int) C.int {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	args := make([]string, 0, int(size))
	for _, s := range unsafe.Slice(cargs, int(size)) {
		args = append(args, C.GoString(s))
	}
	if err := cmd.Run(args); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

// TpermNew returns a generator handle for [0, max], or 0 if source is not a
// known entropy source. A NULL source selects the default.
//
//export TpermNew
func TpermNew(max, seed C.uint64_t, source *C.char) C.uintptr_t {
	var name string
	if source != nil {
		name = C.GoString(source)
	}
	src, err := entropy.New(name, uint64(seed))
	if err != nil {
		logrus.WithError(err).Error("TpermNew")
		return 0
	}
	g := perm.New(uint64(max), perm.WithSource(src))
	return C.uintptr_t(cgo.NewHandle(g))
}

//export TpermNext
func TpermNext(h C.uintptr_t) C.uint64_t {
	return C.uint64_t(generator(h).Next())
}

// TpermUndo writes the position of x to *pos and returns 0, or returns -1
// when x is above max.
//
//export TpermUndo
func TpermUndo(h C.uintptr_t, x C.uint64_t, pos *C.uint64_t) C.int {
	p, err := generator(h).UndoChecked(uint64(x))
	if err != nil {
		return -1
	}
	*pos = C.uint64_t(p)
	return 0
}

//export TpermFree
func TpermFree(h C.uintptr_t) {
	cgo.Handle(h).Delete()
}

func generator(h C.uintptr_t) *perm.Generator {
	return cgo.Handle(h).Value().(*perm.Generator)
}

func main() {}
