package object

import (
	"github.com/lualink/lua-object/engine"
)

// Nil wraps the runtime's absence singleton.
type Nil struct {
	Base
}

// NewNil wraps a fresh handle to the absence value.
func NewNil(rt *engine.Runtime) Nil {
	return Nil{base(rt, rt.NewNil())}
}

func (Nil) IsCorrectType(candidate Object) bool {
	return candidate.IsNil()
}

func (Nil) ErrorMessage() string { return "Error converting to Nil" }
