package creek

import "fmt"

// rowWindow holds a contiguous run of rows in a fixed ring indexed by row
// number. Rows are appended at the downstream end and evicted from the
// upstream end only, so live rows are always consecutive.
type rowWindow struct {
	slots []*Row
	first int // index of the oldest live row
	count int
}

// newRowWindow allocates a ring able to hold capacity rows at once.
func newRowWindow(capacity int) *rowWindow {
	return &rowWindow{slots: make([]*Row, capacity)}
}

func (w *rowWindow) slot(index int) int {
	return index % len(w.slots)
}

// get returns the row with the given index, if it is live.
func (w *rowWindow) get(index int) (*Row, bool) {
	if w.count == 0 || index < w.first || index >= w.first+w.count {
		return nil, false
	}
	return w.slots[w.slot(index)], true
}

// last returns the newest live row, or nil when empty.
func (w *rowWindow) last() *Row {
	if w.count == 0 {
		return nil
	}
	return w.slots[w.slot(w.first+w.count-1)]
}

// push appends r, which must directly follow the newest live row.
func (w *rowWindow) push(r *Row) {
	if w.count == len(w.slots) {
		panic("creek: row window is full")
	}
	if w.count == 0 {
		w.first = r.index
	} else if want := w.first + w.count; r.index != want {
		panic(fmt.Sprintf("creek: appended row %d, expected %d", r.index, want))
	}
	w.slots[w.slot(r.index)] = r
	w.count++
}

// evict drops the oldest live row, which must have the given index.
func (w *rowWindow) evict(index int) {
	if w.count == 0 || index != w.first {
		panic(fmt.Sprintf("creek: evicted row %d, oldest live row is %d", index, w.first))
	}
	w.slots[w.slot(index)] = nil
	w.first++
	w.count--
}

// len returns the number of live rows.
func (w *rowWindow) len() int {
	return w.count
}
