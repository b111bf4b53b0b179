package chain

import (
	"context"
	"fmt"

	"github.com/bassosimone/runtimex"
	"github.com/ib-77/scope/pkg/scope"
	"github.com/ib-77/scope/pkg/scope/core"
)

// Chain wraps a value to enable fluent chaining
type Chain[T any] struct {
	source T
	tracer *tracer
	depth  int
}

type tracer struct {
	logger core.SLogger
	spanID string
}

// Of creates a new chain holding source
func Of[T any](source T) *Chain[T] {
	return &Chain[T]{source: source}
}

// Traced creates a new chain that logs its steps through cfg.Logger
func Traced[T any](cfg *core.Config, source T) *Chain[T] {
	runtimex.Assert(cfg != nil)
	tr := &tracer{logger: cfg.Logger, spanID: cfg.NewSpanID()}
	tr.logger.Info("scopeChainStart", "spanID", tr.spanID, "type", fmt.Sprintf("%T", source))
	return &Chain[T]{source: source, tracer: tr}
}

// FromContext is Traced with the config stored on ctx by core.WithConfig
func FromContext[T any](ctx context.Context, source T) *Chain[T] {
	return Traced(core.ConfigFrom(ctx, core.NewConfig()), source)
}

// Result returns the held value
func (c *Chain[T]) Result() T {
	return c.source
}

// SpanID returns the span id of a traced chain, or "" otherwise
func (c *Chain[T]) SpanID() string {
	if c.tracer == nil {
		return ""
	}
	return c.tracer.spanID
}

// Let returns a new chain holding fn(value)
func (c *Chain[T]) Let(fn func(T) T) *Chain[T] {
	return Let(c, fn)
}

// Run returns a new chain holding fn(value), value passed as the receiver argument
func (c *Chain[T]) Run(fn func(T) T) *Chain[T] {
	return Run(c, fn)
}

// Also calls fn with the value and returns c unchanged
func (c *Chain[T]) Also(fn func(T)) *Chain[T] {
	c.trace("also", c.depth)
	scope.Also(c.source, fn)
	return c
}

// Apply calls fn with the value as its receiver argument and returns c unchanged
func (c *Chain[T]) Apply(fn func(T)) *Chain[T] {
	c.trace("apply", c.depth)
	scope.Apply(c.source, fn)
	return c
}

// TryAlso is Also for functions that can fail; c is returned with fn's error
func (c *Chain[T]) TryAlso(fn func(T) error) (*Chain[T], error) {
	c.trace("tryAlso", c.depth)
	_, err := scope.TryAlso(c.source, fn)
	return c, err
}

// Let chains a function that may change the value type
func Let[T, R any](c *Chain[T], fn func(T) R) *Chain[R] {
	c.trace("let", c.depth+1)
	return next(c, scope.Let(c.source, fn))
}

// Run is Let with the value passed as fn's receiver argument
func Run[T, R any](c *Chain[T], fn func(T) R) *Chain[R] {
	c.trace("run", c.depth+1)
	return next(c, scope.Run(c.source, fn))
}

// TryLet chains a function that returns (R, error). On error it returns nil
// and the error as is.
func TryLet[T, R any](c *Chain[T], fn func(T) (R, error)) (*Chain[R], error) {
	c.trace("tryLet", c.depth+1)
	out, err := scope.TryLet(c.source, fn)
	if err != nil {
		return nil, err
	}
	return next(c, out), nil
}

func TryRun[T, R any](c *Chain[T], fn func(T) (R, error)) (*Chain[R], error) {
	c.trace("tryRun", c.depth+1)
	out, err := scope.TryRun(c.source, fn)
	if err != nil {
		return nil, err
	}
	return next(c, out), nil
}

func next[T, R any](c *Chain[T], value R) *Chain[R] {
	return &Chain[R]{source: value, tracer: c.tracer, depth: c.depth + 1}
}

func (c *Chain[T]) trace(op string, depth int) {
	if c.tracer == nil {
		return
	}
	c.tracer.logger.Debug("scopeStep", "spanID", c.tracer.spanID, "op", op, "depth", depth)
}
