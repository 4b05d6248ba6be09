package engine

// Handle is an opaque reference to a value owned by the Lua state.
// Handle 0 is reserved: it pushes as nil and is never allocated.
type Handle uint32

// slotTable allocates handle slots. The values themselves live in a Lua
// table on the registry side; this is only the native-side bookkeeping that
// decides which slot a captured value is pinned under, with free-list reuse
// of released slots.
//
// No mutex: a Runtime and everything bound to it belong to one goroutine,
// and re-entrant callbacks run on that same goroutine.
type slotTable struct {
	valid    []bool
	freeList []Handle
}

func newSlotTable() *slotTable {
	return &slotTable{
		valid:    make([]bool, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// alloc reserves a slot and returns its handle.
func (t *slotTable) alloc() Handle {
	if n := len(t.freeList); n > 0 {
		h := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.valid[h-1] = true
		return h
	}
	t.valid = append(t.valid, true)
	return Handle(len(t.valid))
}

// release returns a slot to the free list. Releasing an invalid or already
// released handle is a no-op.
func (t *slotTable) release(h Handle) bool {
	if h == 0 || int(h) > len(t.valid) || !t.valid[h-1] {
		return false
	}
	t.valid[h-1] = false
	t.freeList = append(t.freeList, h)
	return true
}

// live reports whether the handle currently names a pinned slot.
func (t *slotTable) live(h Handle) bool {
	return h != 0 && int(h) <= len(t.valid) && t.valid[h-1]
}

// len returns the number of pinned slots.
func (t *slotTable) len() int {
	count := 0
	for _, v := range t.valid {
		if v {
			count++
		}
	}
	return count
}
