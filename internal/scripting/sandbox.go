// Package scripting lets encounter scenarios be written in Lua. Scripts drive
// the shared character kinds of a character.Registry through the flyweight
// module, inside a VM that has no file, OS or module-loading access and a
// fixed opcode budget.
package scripting

import (
	"context"
	"errors"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the opcode budget of one scenario run when
// scenario.instruction_limit is unset.
const DefaultInstructionLimit = 100_000

// ErrInstructionLimit reports that a scenario used up its opcode budget.
var ErrInstructionLimit = errors.New("scenario exceeded its instruction limit")

// safeLibs are the only standard libraries a scenario can see.
var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// blockedGlobals are base-library functions that reach the filesystem, load
// arbitrary chunks, or touch the collector.
var blockedGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require"}

// opBudget wraps a context and cancels it once Done has been polled budget
// times. GopherLua polls Done once per opcode when a context is set.
type opBudget struct {
	context.Context
	cancel    context.CancelFunc
	left      atomic.Int64
	exhausted atomic.Bool
}

func (b *opBudget) Done() <-chan struct{} {
	if b.left.Add(-1) == 0 {
		b.exhausted.Store(true)
		b.cancel()
	}
	return b.Context.Done()
}

// Sandbox is a restricted Lua VM with an opcode budget.
type Sandbox struct {
	L      *lua.LState
	budget *opBudget
}

// NewSandbox returns a VM with only base, table, string and math loaded,
// blockedGlobals removed, and execution bounded by both ctx and limit opcodes.
//
// Precondition: limit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: the caller must Close the returned Sandbox.
func NewSandbox(ctx context.Context, limit int) *Sandbox {
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range safeLibs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range blockedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	vmCtx, cancel := context.WithCancel(ctx)
	b := &opBudget{Context: vmCtx, cancel: cancel}
	b.left.Store(int64(limit))
	L.SetContext(b)

	return &Sandbox{L: L, budget: b}
}

// Exhausted reports whether the opcode budget ran out. Cancellation of the
// parent context does not count.
func (s *Sandbox) Exhausted() bool { return s.budget.exhausted.Load() }

// Close releases the VM and its context.
func (s *Sandbox) Close() {
	s.budget.cancel()
	s.L.Close()
}
