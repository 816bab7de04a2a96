/*
File    : golox/internal/interp/signal.go
*/

package interp

// controlReturn is the non-local exit produced by a `return` statement.
// It satisfies the error interface so it can flow back through the same
// execute/evaluate return channels as a genuine *loxerr.RuntimeError,
// letting every statement executor propagate it by simply returning
// whatever error it received, with no separate signal type threaded
// through the call stack. Function.Call is the only place that ever
// type-asserts for it and stops its propagation (§9).
type controlReturn struct {
	value Value
}

func (c *controlReturn) Error() string { return "return" }
