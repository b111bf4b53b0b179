// Package core contains the plumbing shared by the scope packages: the
// logger abstraction, span ids for traced chains, and a Config that can be
// passed explicitly or carried on a context. It does not define any scope
// operation itself.
package core
