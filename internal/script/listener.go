// Package script runs Lua event listeners.
//
// A script defines a global on_event function that receives the event kind
// name and the source component ID:
//
//	function on_event(kind, id)
//	    if kind == "component.resized" then
//	        print("resized", id)
//	    end
//	end
//
// Scripts run in a sandbox with only the base, table, string and math
// libraries; file loading functions are removed and print is routed to the
// listener's logger. When the listener is created WithRegistry, the script
// may also call emit(kind, id).
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"

	"github.com/GasparKral/WinR/internal/event"
)

const handlerName = "on_event"

// Listener is an event.Listener backed by a Lua script.
//
// gopher-lua states are not goroutine-safe; calls are serialised by mu.
type Listener struct {
	name   string
	config config

	mu      sync.Mutex
	L       *lua.LState
	handler *lua.LFunction
	closed  bool
	busy    atomic.Bool

	calls    atomic.Uint64
	failures atomic.Uint64
}

// Load compiles the script at path.
func Load(path string, opts ...Option) (*Listener, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Compile(path, string(src), opts...)
}

// Compile runs src once and returns a listener calling its on_event.
func Compile(name, src string, opts ...Option) (*Listener, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Listener{
		name:   name,
		config: cfg,
		L:      lua.NewState(lua.Options{SkipOpenLibs: true}),
	}
	l.openSafeLibraries()

	if err := l.L.DoString(src); err != nil {
		l.L.Close()
		return nil, fmt.Errorf("loading script %s: %w", name, err)
	}

	fn, ok := l.L.GetGlobal(handlerName).(*lua.LFunction)
	if !ok {
		l.L.Close()
		return nil, fmt.Errorf("%s: %w", name, ErrNoHandler)
	}
	l.handler = fn
	return l, nil
}

// openSafeLibraries opens only the libraries scripts need.
func (l *Listener) openSafeLibraries() {
	lua.OpenBase(l.L)
	lua.OpenTable(l.L)
	lua.OpenString(l.L)
	lua.OpenMath(l.L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		l.L.SetGlobal(name, lua.LNil)
	}

	l.L.SetGlobal("print", l.L.NewFunction(l.luaPrint))
	if l.config.registry != nil {
		l.L.SetGlobal("emit", l.L.NewFunction(l.luaEmit))
	}
}

func (l *Listener) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	l.config.logger.Info(strings.Join(parts, " "), "script", l.name)
	return 0
}

func (l *Listener) luaEmit(L *lua.LState) int {
	kind, err := event.ParseKind(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	id := L.CheckInt64(2)
	if id < 0 {
		L.ArgError(2, "negative id")
		return 0
	}
	l.config.registry.Emit(kind, event.ID(id))
	return 0
}

// Name returns the script name, usually its path.
func (l *Listener) Name() string { return l.name }

// OnEvent calls the script's on_event. Script failures are logged and
// passed to the error handler; they never propagate to the dispatcher.
func (l *Listener) OnEvent(kind event.Kind, source event.ID) {
	if err := l.Call(kind, source); err != nil && !errors.Is(err, ErrClosed) {
		l.failures.Add(1)
		l.config.logger.Error("script error", "script", l.name, "kind", kind.String(), "source", uint64(source), "err", err)
		if l.config.onError != nil {
			l.config.onError(err)
		}
	}
}

// Call runs on_event and returns its error. A call made while the same
// listener is already running, such as an event the script emitted looping
// back to it, fails with ErrReentrant.
func (l *Listener) Call(kind event.Kind, source event.ID) (err error) {
	if l.busy.Swap(true) {
		return &Error{Script: l.name, Kind: kind, Source: source, Err: ErrReentrant}
	}
	defer l.busy.Store(false)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	l.calls.Add(1)

	if l.config.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), l.config.timeout)
		defer cancel()
		l.L.SetContext(ctx)
		defer l.L.RemoveContext()
	}

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Script: l.name, Kind: kind, Source: source, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	callErr := l.L.CallByParam(lua.P{
		Fn:      l.handler,
		NRet:    0,
		Protect: true,
	}, lua.LString(kind.String()), lua.LNumber(source))
	if callErr != nil {
		return &Error{Script: l.name, Kind: kind, Source: source, Err: callErr}
	}
	return nil
}

// Stats returns the number of calls and failed calls.
func (l *Listener) Stats() (calls, failures uint64) {
	return l.calls.Load(), l.failures.Load()
}

// Close releases the Lua state. Later events are ignored.
func (l *Listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	l.closed = true
	l.L.Close()
	return nil
}
