package chebtech

import "github.com/projectro/chebfun/smooth"

// Engine adapts the package constructor to the smooth.Engine contract.
// The zero value uses package defaults; options set at construction
// apply to every Build call.
type Engine struct {
	opts []Option
}

// compile-time check: *Engine satisfies the engine contract.
var _ smooth.Engine = (*Engine)(nil)

// NewEngine returns an Engine applying opts to every Build.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: opts}
}

// Build adaptively approximates f on [-1,1]. On failure the returned
// value is the non-nil best-effort approximant (see New).
func (e *Engine) Build(f func(float64) float64) (smooth.Fn, error) {
	return New(f, e.opts...)
}
