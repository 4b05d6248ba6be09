package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConvert  Phase = "convert"  // wrapper type conversion
	PhaseDispatch Phase = "dispatch" // dynamic method invocation
	PhaseDefine   Phase = "define"   // class and method registration
	PhaseEval     Phase = "eval"     // source evaluation
	PhaseRuntime  Phase = "runtime"  // runtime lifecycle operations
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindNotFound     Kind = "not_found"
	KindNotCallable  Kind = "not_callable"
	KindSealedKind   Kind = "sealed_kind"
	KindInvalidInput Kind = "invalid_input"
	KindClosed       Kind = "closed"
	KindHostError    Kind = "host_error"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Wrapper string // native wrapper type, e.g. "Str"
	LuaType string // runtime value kind, e.g. "table"
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Wrapper != "" || e.LuaType != "" {
		b.WriteString(": ")
		if e.Wrapper != "" && e.LuaType != "" {
			b.WriteString("wrapper ")
			b.WriteString(e.Wrapper)
			b.WriteString(", runtime kind ")
			b.WriteString(e.LuaType)
		} else if e.Wrapper != "" {
			b.WriteString("wrapper ")
			b.WriteString(e.Wrapper)
		} else {
			b.WriteString("runtime kind ")
			b.WriteString(e.LuaType)
		}
	}

	if e.Detail != "" {
		if e.Wrapper != "" || e.LuaType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Wrapper sets the native wrapper type name
func (b *Builder) Wrapper(t string) *Builder {
	b.err.Wrapper = t
	return b
}

// LuaType sets the runtime value kind name
func (b *Builder) LuaType(t string) *Builder {
	b.err.LuaType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a failed verified-conversion error. The message is the
// target wrapper's fixed error message.
func TypeMismatch(wrapper, luaType, message string) *Error {
	return &Error{
		Phase:   PhaseConvert,
		Kind:    KindTypeMismatch,
		Wrapper: wrapper,
		LuaType: luaType,
		Detail:  message,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotCallable creates an error for invoking a non-function slot
func NotCallable(name, luaType string) *Error {
	return &Error{
		Phase:   PhaseDispatch,
		Kind:    KindNotCallable,
		LuaType: luaType,
		Detail:  fmt.Sprintf("slot %q is not callable", name),
	}
}

// SealedKind creates an error for mutating a sealed value kind
func SealedKind(phase Phase, luaType, what string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindSealedKind,
		LuaType: luaType,
		Detail:  what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed creates an error for operations on a closed runtime
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "runtime closed",
	}
}

// EvalFailed wraps a host-level evaluation error
func EvalFailed(cause error) *Error {
	return &Error{
		Phase: PhaseEval,
		Kind:  KindHostError,
		Cause: cause,
	}
}

// CallFailed wraps a host-level error from a protected function call
func CallFailed(cause error) *Error {
	return &Error{
		Phase: PhaseDispatch,
		Kind:  KindHostError,
		Cause: cause,
	}
}
