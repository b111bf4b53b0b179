// Package chain provides Chain[T], a fluent wrapper around a single value
// built from the scope functions.
//
// Key operations:
// - Of: wrap a value (Traced/FromContext also log every step)
// - Let/Run: move to a new Chain holding fn(value)
// - Also/Apply: run a side effect and return the same Chain
// - TryLet/TryRun/TryAlso: the same for functions returning an error
// - Result: read the held value
//
// The Let and Run methods keep the value type. Use the package-level Let and
// Run functions to switch to a Chain of another type:
//
//	n := chain.Let(chain.Of("abc"), func(s string) int { return len(s) }).
//		Let(func(n int) int { return n + 1 }).
//		Result()
package chain
