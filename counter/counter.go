// Package counter defines cumulative metrics such as values emitted or
// rejection rounds spent.
package counter

// Counter is a cumulative metric
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(n int64)
}
