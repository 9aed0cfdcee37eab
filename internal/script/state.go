package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/strand/internal/engine/strand"
)

// DefaultOpLimit is the strand operation budget per run.
const DefaultOpLimit = 10_000_000

// State wraps gopher-lua with the strand module installed.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes calls from
// Go, and Lua code itself runs single-threaded. Strands created by a script
// belong to that script's state.
type State struct {
	L *lua.LState

	mu sync.Mutex

	opLimit int64
	ops     int64
	variant strand.Variant
	out     io.Writer

	closed bool
}

// Option configures a State.
type Option func(*State)

// WithOpLimit sets the maximum strand operations per run. Zero disables the limit.
func WithOpLimit(n int64) Option {
	return func(s *State) {
		s.opLimit = n
	}
}

// WithVariant sets the variant used by strand.new when none is given.
func WithVariant(v strand.Variant) Option {
	return func(s *State) {
		s.variant = v
	}
}

// WithOutput redirects print.
func WithOutput(w io.Writer) Option {
	return func(s *State) {
		if w != nil {
			s.out = w
		}
	}
}

// NewState creates a sandboxed Lua state with the strand module.
func NewState(opts ...Option) *State {
	s := &State{
		opLimit: DefaultOpLimit,
		variant: strand.VariantLink,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.L = lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(s.L)
	s.installPrint()
	s.registerModule()
	return s
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug and package are intentionally not opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// installPrint replaces print so script output goes to the configured writer.
func (s *State) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(s.out, strings.Join(parts, "\t"))
		return 0
	}))
}

// RunFile executes a Lua file. Canceling ctx aborts the script.
func (s *State) RunFile(ctx context.Context, path string) error {
	return s.run(ctx, func() error {
		return s.L.DoFile(path)
	})
}

// RunString executes Lua source. Canceling ctx aborts the script.
func (s *State) RunString(ctx context.Context, code string) error {
	return s.run(ctx, func() error {
		return s.L.DoString(code)
	})
}

// run executes fn with the op counter reset and panic recovery.
func (s *State) run(ctx context.Context, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	s.ops = 0
	if ctx != nil {
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Ops returns the strand operations performed by the last run.
func (s *State) Ops() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops
}

// Close releases all resources associated with the Lua state.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// tick counts one strand operation and raises a Lua error past the limit.
func (s *State) tick(L *lua.LState) {
	s.ops++
	if s.opLimit > 0 && s.ops > s.opLimit {
		L.RaiseError("%v (%d)", ErrOpLimit, s.opLimit)
	}
}

// RunFile runs a script in a fresh state that is closed afterwards.
func RunFile(ctx context.Context, path string, opts ...Option) error {
	s := NewState(opts...)
	defer s.Close()
	return s.RunFile(ctx, path)
}
