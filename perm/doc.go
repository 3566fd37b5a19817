// Package perm enumerates the integers [0, max] in a shuffled order without
// repeats, using constant memory for any max up to 2^64-1, and maps every
// emitted value back to its position in the sequence.
//
// # How it works
//
// A Generator keeps a counter. Each call to Next passes the counter through
// a fixed pipeline of bijections on the smallest power-of-two domain
// [0, 2^bits) that holds max: four stages of Weyl step, invertible GF(2)
// matrix and odd multiplier, then an avalanche mix. When the output lands
// above max it is fed through the pipeline again until it does not. Since
// the pipeline is a bijection and the walk starts in range, the walk cannot
// get stuck among out-of-range values, and two positions never meet on the
// same output. Undo runs the inverse pipeline with the same rejection rule.
//
// # Basic usage
//
//	g := perm.New(999, perm.WithSource(entropy.NewPCGSource(seed)))
//	for i := 0; i < 1000; i++ {
//	    v := g.Next()       // every value in [0, 999] exactly once
//	    p := g.Undo(v)      // p == i
//	}
//
// # Preconditions
//
// Undo expects a value the same Generator can emit. Release builds do not
// check this and return an unspecified result otherwise; UndoChecked reports
// values above max instead. Building with -tags tpermdebug turns violated
// preconditions into panics.
//
// # Thread safety
//
// A Generator is not safe for concurrent use: Next advances a shared
// counter. Give each goroutine its own Generator, or wrap one in
// tperm.SyncGenerator.
package perm
