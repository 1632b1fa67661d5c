// Package util provides small helpers shared by the use cases.
package util

import "sync/atomic"

// Generation hands out tokens for asynchronous work and tells, on completion,
// whether the work is still current. Issuing a new token or calling Invalidate
// makes every earlier token stale.
//
// The zero value is ready to use.
type Generation struct {
	current atomic.Uint64
	closed  atomic.Bool
}

// Token is captured when a request is issued and checked before its result is applied.
type Token struct {
	gen *Generation
	id  uint64
}

// Next starts a new generation and returns its token.
func (g *Generation) Next() Token {
	return Token{gen: g, id: g.current.Add(1)}
}

// Invalidate makes all outstanding tokens stale without issuing a new one.
func (g *Generation) Invalidate() {
	g.current.Add(1)
}

// Close invalidates outstanding tokens and marks the owner as torn down.
// Tokens issued after Close are never valid.
func (g *Generation) Close() {
	g.closed.Store(true)
	g.current.Add(1)
}

// Closed reports whether Close has been called.
func (g *Generation) Closed() bool {
	return g.closed.Load()
}

// Valid reports whether no newer generation was started and the owner is still alive.
func (t Token) Valid() bool {
	if t.gen == nil {
		return false
	}

	return !t.gen.closed.Load() && t.gen.current.Load() == t.id
}
