// Package scope provides scope functions: small generic helpers that apply a
// function to a value and return either the function's result or the value
// itself.
//
// - Let/Run: return fn(source)
// - Also/Apply: call fn(source) for its side effect, return source
// - TryLet/TryRun/TryAlso/TryApply: the same for functions returning an error
//
// Run and Apply pass source as fn's first argument, standing in for a
// receiver. For chained use, see package chain.
package scope
