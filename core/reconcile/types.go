package reconcile

import (
	"cmp"
	"slices"
	"strconv"
)

// ID identifies an item. Identity and ordering of items are both governed by it.
type ID int

// Item is an immutable grid entry. Two items with the same ID are the same item,
// even when their titles differ.
type Item struct {
	// ID is the unique identifier of the item.
	ID ID `json:"id"`
	// Title is the display payload. It is carried along but never reconciled.
	Title string `json:"title"`
}

// NewItem returns an item whose title is its decimal ID.
func NewItem(id ID) Item {
	return Item{ID: id, Title: strconv.Itoa(int(id))}
}

// Compare orders items by ID.
func (i Item) Compare(other Item) int {
	return cmp.Compare(i.ID, other.ID)
}

// Less reports whether i sorts before other.
func (i Item) Less(other Item) bool {
	return i.ID < other.ID
}

// Equal reports whether both items share an ID.
func (i Item) Equal(other Item) bool {
	return i.ID == other.ID
}

// ItemsFromIDs builds items for the given ids in the given order.
func ItemsFromIDs(ids ...ID) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, NewItem(id))
	}
	return items
}

// IDsOf returns the ids of items in order.
func IDsOf(items []Item) []ID {
	ids := make([]ID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

// SortItems sorts items by ID in place and drops duplicate ids, keeping the last
// occurrence of each.
func SortItems(items []Item) []Item {
	byID := make(map[ID]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	out := make([]Item, 0, len(byID))
	for _, item := range byID {
		out = append(out, item)
	}
	slices.SortFunc(out, Item.Compare)
	return out
}

// IDSet is a set of item ids.
type IDSet map[ID]struct{}

// NewIDSet builds a set holding ids.
func NewIDSet(ids ...ID) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is in the set. A nil set is empty.
func (s IDSet) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s IDSet) Add(id ID) {
	s[id] = struct{}{}
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []ID {
	ids := make([]ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy of the set.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Slot is one column of a row: either occupied by an item or empty.
type Slot struct {
	Item     Item `json:"item"`
	Occupied bool `json:"occupied"`
}

// Occupy returns a slot holding item.
func Occupy(item Item) Slot {
	return Slot{Item: item, Occupied: true}
}

// Phase is one step of an animation cycle.
type Phase int

const (
	// PhaseDelete removes filtered cells.
	PhaseDelete Phase = iota
	// PhaseTranspose moves cells within a row and across row edges.
	PhaseTranspose
	// PhaseCreate adds cells for items that were not shown before.
	PhaseCreate
)

// Phases lists every phase in execution order.
var Phases = [...]Phase{PhaseDelete, PhaseTranspose, PhaseCreate}

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDelete:
		return "delete"
	case PhaseTranspose:
		return "transpose"
	case PhaseCreate:
		return "create"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// ActionType represents the kind of cell mutation.
type ActionType string

const (
	// ActionDelete removes the cell at Column.
	ActionDelete ActionType = "delete"
	// ActionTranspose moves the cell at Column to MoveTo.
	ActionTranspose ActionType = "transpose"
	// ActionCreate creates a cell for Item at Column.
	ActionCreate ActionType = "create"
)

// Phase returns the phase an action of this type runs in.
func (t ActionType) Phase() Phase {
	switch t {
	case ActionDelete:
		return PhaseDelete
	case ActionCreate:
		return PhaseCreate
	default:
		return PhaseTranspose
	}
}

// Action represents a planned cell mutation.
type Action struct {
	// Type specifies the mutation to perform.
	Type ActionType `json:"type"`

	// Column is the cell the action starts from. For sideboard entries it is the
	// virtual column of the sideboard slot.
	Column int `json:"column"`

	// MoveTo is the destination column of a transpose. It may be virtual for exits.
	MoveTo int `json:"move_to"`

	// Item is the subject of the action.
	Item Item `json:"item"`

	// Incoming marks sideboard entries: the row view has no cell for Item yet and
	// must materialize one at Column before moving it.
	Incoming bool `json:"incoming,omitempty"`
}

// CellActions holds at most one action per phase for a column.
type CellActions struct {
	Delete    *Action `json:"delete,omitempty"`
	Transpose *Action `json:"transpose,omitempty"`
	Create    *Action `json:"create,omitempty"`
}

// Empty reports whether the column has nothing to do.
func (c CellActions) Empty() bool {
	return c.Delete == nil && c.Transpose == nil && c.Create == nil
}

// For returns the action planned for phase, if any.
func (c CellActions) For(phase Phase) *Action {
	switch phase {
	case PhaseDelete:
		return c.Delete
	case PhaseTranspose:
		return c.Transpose
	case PhaseCreate:
		return c.Create
	default:
		return nil
	}
}
