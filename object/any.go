package object

import (
	"github.com/lualink/lua-object/engine"
)

// Any is the type-erased wrapper: a handle with no class assertion at all.
// It is what dynamic sends return, what callbacks receive, and the
// conversion source and target for all dynamic dispatch.
type Any struct {
	Base
}

// FromHandle wraps a raw handle. Embedders holding handles from their own
// engine interactions use this to re-enter the typed layer.
func FromHandle(rt *engine.Runtime, h engine.Handle) Any {
	return Any{base(rt, h)}
}

func (Any) IsCorrectType(Object) bool { return true }
func (Any) ErrorMessage() string      { return "Error converting to Any" }
