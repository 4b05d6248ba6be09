package engine

import (
	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/errors"
)

// handleTableKey is the registry slot for the table that pins captured values
// against the collector.
const handleTableKey = "lualink.handles"

// Config holds configuration for runtime creation
type Config struct {
	// DisableStdlib skips opening the Lua standard libraries. Builtin kind
	// classes then have nothing to chain to, so values only respond to
	// methods defined through this layer.
	DisableStdlib bool

	// Logger overrides the package logger for this runtime.
	Logger *zap.Logger
}

// Runtime wraps a Lua state with handle and class-model primitives.
// It is not safe for concurrent use.
type Runtime struct {
	l       *lua.State
	slots   *slotTable
	builtin [int(luaobject.KindThread) + 1]Handle
	logger  *zap.Logger
	closed  bool
}

// New creates a runtime backed by a fresh Lua state.
func New(cfg *Config) *Runtime {
	if cfg == nil {
		cfg = &Config{}
	}

	l := lua.NewState()
	if !cfg.DisableStdlib {
		lua.OpenLibraries(l)
	}

	log := cfg.Logger
	if log == nil {
		log = Logger()
	}

	r := &Runtime{
		l:      l,
		slots:  newSlotTable(),
		logger: log,
	}

	l.NewTable()
	l.SetField(lua.RegistryIndex, handleTableKey)

	r.initBuiltinClasses(!cfg.DisableStdlib)

	return r
}

// Close drops every pinned value and stops accepting evaluation.
// Handles and wrappers bound to this runtime must not be used afterwards.
func (r *Runtime) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	r.l.NewTable()
	r.l.SetField(lua.RegistryIndex, handleTableKey)
	r.slots = newSlotTable()

	return nil
}

// State exposes the underlying Lua state for embedders that need to reach
// past this layer. Stack discipline is the caller's problem.
func (r *Runtime) State() *lua.State {
	return r.l
}

// --- handle primitives ---

func (r *Runtime) pushHandleTable() {
	r.l.Field(lua.RegistryIndex, handleTableKey)
}

// push pushes the value a handle refers to. Handle 0 pushes nil.
func (r *Runtime) push(h Handle) {
	if h == 0 {
		r.l.PushNil()
		return
	}
	r.pushHandleTable()
	r.l.RawGetInt(-1, int(h))
	r.l.Remove(-2)
}

// capture pops the value on top of the stack and pins it under a new handle.
func (r *Runtime) capture() Handle {
	h := r.slots.alloc()
	r.pushHandleTable() // v ht
	r.l.PushValue(-2)   // v ht v
	r.l.RawSetInt(-2, int(h))
	r.l.Pop(2)
	return h
}

// captureAt pins the value at a stack index without disturbing the stack.
func (r *Runtime) captureAt(index int) Handle {
	abs := r.l.AbsIndex(index)
	h := r.slots.alloc()
	r.pushHandleTable()
	r.l.PushValue(abs)
	r.l.RawSetInt(-2, int(h))
	r.l.Pop(1)
	return h
}

// Release un-pins a handle, returning its slot for reuse. The referenced
// value stays alive for as long as the runtime itself still reaches it.
func (r *Runtime) Release(h Handle) {
	if !r.slots.release(h) {
		return
	}
	r.pushHandleTable()
	r.l.PushNil()
	r.l.RawSetInt(-2, int(h))
	r.l.Pop(1)
}

// HandleCount returns the number of live handles.
func (r *Runtime) HandleCount() int {
	return r.slots.len()
}

// Live reports whether a handle is currently pinned.
func (r *Runtime) Live(h Handle) bool {
	return r.slots.live(h)
}

// KindOf returns the coarse value kind of a handle.
func (r *Runtime) KindOf(h Handle) luaobject.Kind {
	r.push(h)
	k := kindAt(r.l, -1)
	r.l.Pop(1)
	return k
}

// IsNil reports whether the handle refers to the absence value.
func (r *Runtime) IsNil(h Handle) bool {
	return r.KindOf(h) == luaobject.KindNil
}

// Equal reports runtime raw equality of the two referenced values.
func (r *Runtime) Equal(a, b Handle) bool {
	r.push(a)
	r.push(b)
	eq := r.l.RawEqual(-2, -1)
	r.l.Pop(2)
	return eq
}

func kindAt(l *lua.State, index int) luaobject.Kind {
	switch l.TypeOf(index) {
	case lua.TypeBoolean:
		return luaobject.KindBoolean
	case lua.TypeNumber:
		return luaobject.KindNumber
	case lua.TypeString:
		return luaobject.KindString
	case lua.TypeTable:
		return luaobject.KindTable
	case lua.TypeFunction:
		return luaobject.KindFunction
	case lua.TypeUserData:
		return luaobject.KindUserData
	case lua.TypeThread:
		return luaobject.KindThread
	default:
		return luaobject.KindNil
	}
}

// --- value constructors ---

func (r *Runtime) NewString(s string) Handle {
	r.l.PushString(s)
	return r.capture()
}

func (r *Runtime) NewInteger(i int) Handle {
	r.l.PushInteger(i)
	return r.capture()
}

func (r *Runtime) NewNumber(f float64) Handle {
	r.l.PushNumber(f)
	return r.capture()
}

func (r *Runtime) NewBoolean(b bool) Handle {
	r.l.PushBoolean(b)
	return r.capture()
}

func (r *Runtime) NewNil() Handle {
	r.l.PushNil()
	return r.capture()
}

func (r *Runtime) NewTable() Handle {
	r.l.NewTable()
	return r.capture()
}

// --- value extractors ---

func (r *Runtime) StringValue(h Handle) string {
	r.push(h)
	s, _ := r.l.ToString(-1)
	r.l.Pop(1)
	return s
}

func (r *Runtime) IntegerValue(h Handle) int {
	r.push(h)
	n, _ := r.l.ToInteger(-1)
	r.l.Pop(1)
	return n
}

func (r *Runtime) NumberValue(h Handle) float64 {
	r.push(h)
	f, _ := r.l.ToNumber(-1)
	r.l.Pop(1)
	return f
}

func (r *Runtime) BooleanValue(h Handle) bool {
	r.push(h)
	b := r.l.ToBoolean(-1)
	r.l.Pop(1)
	return b
}

// --- globals and evaluation ---

// Global returns a handle to a global value.
func (r *Runtime) Global(name string) Handle {
	r.l.Global(name)
	return r.capture()
}

// SetGlobal binds a global name to the referenced value.
func (r *Runtime) SetGlobal(name string, h Handle) {
	r.push(h)
	r.l.SetGlobal(name)
}

// Eval runs a chunk of source inside a protected call and returns a handle
// to its first result, or a nil handle when the chunk returns nothing.
func (r *Runtime) Eval(code string) (Handle, error) {
	if r.closed {
		return 0, errors.Closed(errors.PhaseEval)
	}

	top := r.l.Top()
	if err := lua.DoString(r.l, code); err != nil {
		r.l.SetTop(top)
		r.logger.Debug("eval failed", zap.Error(err))
		return 0, errors.EvalFailed(err)
	}
	if r.l.Top() == top {
		return r.NewNil(), nil
	}
	r.l.SetTop(top + 1)
	return r.capture(), nil
}

// Raise aborts through the host runtime's own control flow. It never
// returns: the error unwinds to the innermost protected call, or takes the
// process down when no protected frame is active. Intended for use inside
// callbacks.
func (r *Runtime) Raise(format string, args ...any) {
	lua.Errorf(r.l, format, args...)
}
