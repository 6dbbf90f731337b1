package reconcile

import "slices"

// Row reconciles the contents of one grid row across cycles.
// A Row is not safe for concurrent use; the grid serializes access to it.
type Row struct {
	columns int
	cells   []Slot
	plan    *Plan
}

// NewRow creates an empty row of the given width.
func NewRow(columns int) (*Row, error) {
	if columns < 1 {
		return nil, &RowError{Code: ErrCodeInvalidColumns, Columns: columns, Got: columns}
	}
	return &Row{
		columns: columns,
		cells:   make([]Slot, columns),
		plan:    NewPlan(columns),
	}, nil
}

// Columns returns the width of the row.
func (r *Row) Columns() int {
	return r.columns
}

// Slots returns a copy of the row's snapshot.
func (r *Row) Slots() []Slot {
	return slices.Clone(r.cells)
}

// Items returns the occupied cells of the snapshot in column order.
func (r *Row) Items() []Item {
	items := make([]Item, 0, r.columns)
	for _, slot := range r.cells {
		if slot.Occupied {
			items = append(items, slot.Item)
		}
	}
	return items
}

// Plan returns the plan computed by the last successful SetRowItems.
func (r *Row) Plan() *Plan {
	return r.plan
}

// Reset empties the snapshot and the plan.
func (r *Row) Reset() {
	r.cells = make([]Slot, r.columns)
	r.plan = NewPlan(r.columns)
}

// SetRowItems computes the plan that turns the current snapshot into newItems and
// then records newItems as the snapshot for the next cycle.
//
// activeIDs holds the ids of the collection applied by the previous cycle,
// including ids it truncated; filteredIDs holds the ids being removed from display. newItems must be
// sorted by ID and hold at most Columns items; otherwise a *RowError is returned
// and the row is left as it was.
func (r *Row) SetRowItems(newItems []Item, activeIDs, filteredIDs IDSet) (*Plan, error) {
	if len(newItems) > r.columns {
		return nil, &RowError{Code: ErrCodeRowOverflow, Columns: r.columns, Got: len(newItems)}
	}

	plan := r.buildPlan(newItems, activeIDs, filteredIDs)

	for i := range r.cells {
		if i < len(newItems) {
			r.cells[i] = Occupy(newItems[i])
		} else {
			r.cells[i] = Slot{}
		}
	}
	r.plan = plan

	return plan, nil
}

func (r *Row) buildPlan(newItems []Item, activeIDs, filteredIDs IDSet) *Plan {
	plan := NewPlan(r.columns)

	newIndex := make(map[ID]int, len(newItems))
	for i, item := range newItems {
		newIndex[item.ID] = i
	}

	// Ids of cells already in this row are settled by the first pass.
	dealtWith := make(IDSet, r.columns)

	leftExit := -1
	rightExit := 0

	for i, slot := range r.cells {
		if !slot.Occupied {
			continue
		}
		old := slot.Item
		dealtWith.Add(old.ID)

		if filteredIDs.Has(old.ID) {
			plan.Cells[i].Delete = &Action{Type: ActionDelete, Column: i, MoveTo: i, Item: old}
			continue
		}

		if i < len(newItems) && newItems[i].Equal(old) {
			continue
		}

		if j, ok := newIndex[old.ID]; ok {
			plan.Cells[i].Transpose = &Action{Type: ActionTranspose, Column: i, MoveTo: j, Item: old}
			continue
		}

		// The cell leaves the row; it heads toward the side its order points to.
		if len(newItems) == 0 || old.Less(newItems[0]) {
			plan.Cells[i].Transpose = &Action{Type: ActionTranspose, Column: i, MoveTo: leftExit, Item: old}
			leftExit--
		} else {
			plan.Cells[i].Transpose = &Action{Type: ActionTranspose, Column: i, MoveTo: r.columns + rightExit, Item: old}
			rightExit++
		}
	}

	var left, right []Action
	for i, item := range newItems {
		if dealtWith.Has(item.ID) {
			continue
		}

		if !activeIDs.Has(item.ID) {
			plan.Cells[i].Create = &Action{Type: ActionCreate, Column: i, MoveTo: i, Item: item}
			continue
		}

		first := r.cells[0]
		entry := Action{Type: ActionTranspose, MoveTo: i, Item: item, Incoming: true}
		if !first.Occupied || item.Less(first.Item) {
			left = append(left, entry)
		} else {
			right = append(right, entry)
		}
	}

	// The last cell queued on the left ends up nearest the visible edge.
	slices.Reverse(left)

	for k := range left {
		left[k].Column = LeftVirtualColumn(k)
	}
	for k := range right {
		right[k].Column = RightVirtualColumn(r.columns, k)
	}
	if left != nil {
		plan.LeftSideboard = left
	}
	if right != nil {
		plan.RightSideboard = right
	}

	return plan
}
