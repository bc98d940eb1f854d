/*
File    : wisp/object/arena.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

// Handle names a frame held by an Arena. It is the closure-capture
// story this package uses in place of a bare pointer or a weak
// pointer: a named function bound into its own defining frame would
// otherwise create a pointer cycle, and a weak reference would risk
// the frame being collected the moment the call that created it
// returns, breaking ordinary closures returned from functions (the
// classic "adder" pattern).
type Handle int

// Arena owns a set of frames addressed by Handle. Nothing evicts a
// frame during ordinary evaluation; Release exists so tests (and any
// future frame-lifetime policy) can exercise the EnvironmentHasDropped
// path without that ever firing during normal program evaluation.
type Arena struct {
	frames map[Handle]*Environment
	next   Handle
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{frames: make(map[Handle]*Environment)}
}

// Put registers env and returns the Handle future closures can use to
// recover it.
func (a *Arena) Put(env *Environment) Handle {
	h := a.next
	a.next++
	a.frames[h] = env
	return h
}

// Get resolves a Handle back to its Environment. ok is false once the
// frame has been Released.
func (a *Arena) Get(h Handle) (*Environment, bool) {
	env, ok := a.frames[h]
	return env, ok
}

// Release drops a frame from the arena, simulating the frame having
// been dropped. Closures still holding h will fail to upgrade it.
func (a *Arena) Release(h Handle) {
	delete(a.frames, h)
}
