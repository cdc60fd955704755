// Package smooth declares the contract between the singular-function
// core (singfun) and any smooth-function engine (chebtech is the
// in-repo implementation).
//
// A smooth engine produces and consumes opaque approximants of smooth
// real-valued functions on [-1,1]. The core never inspects engine
// internals: it only builds residuals through Engine.Build and
// combines them through the Fn operation set.
//
// All Fn implementations must be immutable: every operation returns a
// fresh value and never mutates its receiver or arguments, so values
// are safe for concurrent use without locks.
package smooth
