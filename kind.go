package luaobject

// Kind is the closed enumeration of coarse runtime value kinds.
// It mirrors the host runtime's own type tags and is used for low-level
// branching when neither a full conversion nor a dynamic send is appropriate.
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindTable
	KindFunction
	KindUserData
	KindThread
)

var kindNames = [...]string{
	KindNil:      "nil",
	KindBoolean:  "boolean",
	KindNumber:   "number",
	KindString:   "string",
	KindTable:    "table",
	KindFunction: "function",
	KindUserData: "userdata",
	KindThread:   "thread",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Immediate reports whether values of this kind are sealed against method
// definition and singleton classes. The host runtime rejects per-object
// mutation of these kinds; the rejection surfaces through its own error
// mechanism, not through this layer's.
func (k Kind) Immediate() bool {
	switch k {
	case KindTable, KindUserData:
		return false
	default:
		return true
	}
}
