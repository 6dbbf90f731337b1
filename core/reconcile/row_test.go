package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRow builds a row and seeds its snapshot with ids, as if a previous
// cycle had shown them.
func newTestRow(t *testing.T, columns int, ids ...ID) *Row {
	t.Helper()
	row, err := NewRow(columns)
	require.NoError(t, err)
	if len(ids) > 0 {
		_, err = row.SetRowItems(ItemsFromIDs(ids...), nil, nil)
		require.NoError(t, err)
	}
	return row
}

func TestNewRow_InvalidColumns(t *testing.T) {
	for _, columns := range []int{0, -1, -5} {
		row, err := NewRow(columns)
		assert.Nil(t, row)
		assert.True(t, IsInvalidColumns(err), "columns=%d", columns)
	}
}

func TestSetRowItems_Overflow(t *testing.T) {
	row := newTestRow(t, 2, 1, 2)
	before := row.Plan()

	plan, err := row.SetRowItems(ItemsFromIDs(1, 2, 3), NewIDSet(1, 2), nil)
	assert.Nil(t, plan)
	assert.True(t, IsOverflow(err))
	assert.Contains(t, err.Error(), "3 items do not fit in 2 columns")

	// Snapshot and plan are untouched.
	assert.Equal(t, []ID{1, 2}, IDsOf(row.Items()))
	assert.Same(t, before, row.Plan())
}

func TestSetRowItems_FirstFillCreates(t *testing.T) {
	row := newTestRow(t, 3)

	plan, err := row.SetRowItems(ItemsFromIDs(1, 2), NewIDSet(), NewIDSet())
	require.NoError(t, err)

	s := plan.Summary()
	assert.Equal(t, 2, s.Creates)
	assert.Equal(t, 2, s.Total())
	require.NotNil(t, plan.Cells[0].Create)
	assert.Equal(t, ID(1), plan.Cells[0].Create.Item.ID)
	require.NotNil(t, plan.Cells[1].Create)
	assert.Equal(t, ID(2), plan.Cells[1].Create.Item.ID)
	assert.True(t, plan.Cells[2].Empty())
}

func TestSetRowItems_SteadyState(t *testing.T) {
	row := newTestRow(t, 3, 1, 2, 3)

	plan, err := row.SetRowItems(ItemsFromIDs(1, 2, 3), NewIDSet(1, 2, 3), NewIDSet())
	require.NoError(t, err)
	assert.True(t, plan.Empty())
	for _, phase := range Phases {
		assert.Empty(t, plan.Actions(phase), phase.String())
	}
}

func TestSetRowItems_TransposeAndCreate(t *testing.T) {
	// [1,3] then the sorted collection [1,2,3]: 3 slides right, 2 appears.
	row := newTestRow(t, 3, 1, 3)

	plan, err := row.SetRowItems(ItemsFromIDs(1, 2, 3), NewIDSet(1, 3), NewIDSet())
	require.NoError(t, err)

	assert.True(t, plan.Cells[0].Empty())
	require.NotNil(t, plan.Cells[1].Transpose)
	assert.Equal(t, 1, plan.Cells[1].Transpose.Column)
	assert.Equal(t, 2, plan.Cells[1].Transpose.MoveTo)
	assert.Equal(t, ID(3), plan.Cells[1].Transpose.Item.ID)
	require.NotNil(t, plan.Cells[1].Create)
	assert.Equal(t, ID(2), plan.Cells[1].Create.Item.ID)

	s := plan.Summary()
	assert.Equal(t, PlanSummary{Transposes: 1, Creates: 1}, s)
}

func TestSetRowItems_FilterDeletesAndShifts(t *testing.T) {
	row := newTestRow(t, 3, 1, 2, 3)

	plan, err := row.SetRowItems(ItemsFromIDs(2, 3), NewIDSet(1, 2, 3), NewIDSet(1))
	require.NoError(t, err)

	require.NotNil(t, plan.Cells[0].Delete)
	assert.Equal(t, ID(1), plan.Cells[0].Delete.Item.ID)
	require.NotNil(t, plan.Cells[1].Transpose)
	assert.Equal(t, 0, plan.Cells[1].Transpose.MoveTo)
	require.NotNil(t, plan.Cells[2].Transpose)
	assert.Equal(t, 1, plan.Cells[2].Transpose.MoveTo)
	assert.Equal(t, PlanSummary{Deletes: 1, Transposes: 2}, plan.Summary())

	assert.Equal(t, []ID{2, 3}, IDsOf(row.Items()))
	assert.False(t, row.Slots()[2].Occupied)
}

func TestSetRowItems_ExitDirection(t *testing.T) {
	tests := []struct {
		name   string
		old    []ID
		next   []ID
		moveTo map[ID]int
	}{
		{
			name:   "pushed out right",
			old:    []ID{2, 3, 4},
			next:   []ID{1, 2, 3},
			moveTo: map[ID]int{2: 1, 3: 2, 4: 3},
		},
		{
			name:   "pulled out left",
			old:    []ID{1, 2, 3},
			next:   []ID{2, 3, 4},
			moveTo: map[ID]int{2: 0, 3: 1, 1: -1},
		},
		{
			name:   "emptied row exits left",
			old:    []ID{5, 6},
			next:   []ID{},
			moveTo: map[ID]int{5: -1, 6: -2},
		},
		{
			name:   "several right exits",
			old:    []ID{7, 8, 9},
			next:   []ID{1},
			moveTo: map[ID]int{7: 3, 8: 4, 9: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := newTestRow(t, 3, tt.old...)
			active := NewIDSet(tt.old...)
			for _, id := range tt.next {
				active.Add(id)
			}

			plan, err := row.SetRowItems(ItemsFromIDs(tt.next...), active, NewIDSet())
			require.NoError(t, err)

			got := make(map[ID]int)
			for _, action := range plan.Actions(PhaseTranspose) {
				if !action.Incoming {
					got[action.Item.ID] = action.MoveTo
				}
			}
			assert.Equal(t, tt.moveTo, got)
		})
	}
}

func TestSetRowItems_ExitCountersResetEachCycle(t *testing.T) {
	row := newTestRow(t, 2, 5, 6)

	plan, err := row.SetRowItems(ItemsFromIDs(1), NewIDSet(1, 5, 6), NewIDSet())
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Cells[0].Transpose.MoveTo)
	assert.Equal(t, 3, plan.Cells[1].Transpose.MoveTo)

	// Next cycle: 1 is pushed out again by 0; numbering starts from scratch.
	plan, err = row.SetRowItems(ItemsFromIDs(0), NewIDSet(0, 1), NewIDSet())
	require.NoError(t, err)
	require.NotNil(t, plan.Cells[0].Transpose)
	assert.Equal(t, 2, plan.Cells[0].Transpose.MoveTo)
}

func TestSetRowItems_SideboardEntries(t *testing.T) {
	t.Run("entering from the left lands in the reversed order", func(t *testing.T) {
		row := newTestRow(t, 3, 4, 5, 6)

		plan, err := row.SetRowItems(ItemsFromIDs(1, 2, 3), NewIDSet(1, 2, 3, 4, 5, 6), NewIDSet())
		require.NoError(t, err)

		require.Len(t, plan.LeftSideboard, 3)
		assert.Empty(t, plan.RightSideboard)

		assert.Equal(t, ID(3), plan.LeftSideboard[0].Item.ID)
		assert.Equal(t, -1, plan.LeftSideboard[0].Column)
		assert.Equal(t, 2, plan.LeftSideboard[0].MoveTo)

		assert.Equal(t, ID(1), plan.LeftSideboard[2].Item.ID)
		assert.Equal(t, -3, plan.LeftSideboard[2].Column)
		assert.Equal(t, 0, plan.LeftSideboard[2].MoveTo)

		for _, action := range plan.LeftSideboard {
			assert.True(t, action.Incoming)
			assert.Equal(t, ActionTranspose, action.Type)
		}
	})

	t.Run("entering from the right keeps queue order", func(t *testing.T) {
		row := newTestRow(t, 3, 1, 2, 3)

		plan, err := row.SetRowItems(ItemsFromIDs(4, 5, 6), NewIDSet(1, 2, 3, 4, 5, 6), NewIDSet())
		require.NoError(t, err)

		require.Len(t, plan.RightSideboard, 3)
		for k, action := range plan.RightSideboard {
			assert.Equal(t, 3+k, action.Column)
			assert.Equal(t, k, action.MoveTo)
			assert.Equal(t, ID(4+k), action.Item.ID)
		}
	})

	t.Run("empty row takes entries from the left", func(t *testing.T) {
		row := newTestRow(t, 3)

		plan, err := row.SetRowItems(ItemsFromIDs(8), NewIDSet(8), NewIDSet())
		require.NoError(t, err)
		require.Len(t, plan.LeftSideboard, 1)
		assert.Equal(t, -1, plan.LeftSideboard[0].Column)
		assert.Equal(t, 0, plan.LeftSideboard[0].MoveTo)
	})
}

func TestPlan_ActionsOrder(t *testing.T) {
	row := newTestRow(t, 3, 2, 4, 6)

	// 2 filtered, 4 stays in row, 6 pushed right, 3 new, 1 enters from the left.
	plan, err := row.SetRowItems(ItemsFromIDs(1, 3, 4), NewIDSet(1, 2, 4, 6), NewIDSet(2))
	require.NoError(t, err)

	deletes := plan.Actions(PhaseDelete)
	require.Len(t, deletes, 1)
	assert.Equal(t, ID(2), deletes[0].Item.ID)

	transposes := plan.Actions(PhaseTranspose)
	require.Len(t, transposes, 3)
	assert.Equal(t, ID(4), transposes[0].Item.ID)
	assert.Equal(t, 2, transposes[0].MoveTo)
	assert.Equal(t, ID(6), transposes[1].Item.ID)
	assert.Equal(t, 3, transposes[1].MoveTo)
	assert.Equal(t, ID(1), transposes[2].Item.ID)
	assert.True(t, transposes[2].Incoming)

	creates := plan.Actions(PhaseCreate)
	require.Len(t, creates, 1)
	assert.Equal(t, ID(3), creates[0].Item.ID)
	assert.Equal(t, 1, creates[0].Column)

	assert.Equal(t, PlanSummary{Deletes: 1, Transposes: 1, Exits: 1, Entries: 1, Creates: 1}, plan.Summary())
}

func TestRow_Reset(t *testing.T) {
	row := newTestRow(t, 3, 1, 2)
	row.Reset()
	assert.Empty(t, row.Items())
	assert.True(t, row.Plan().Empty())
	assert.Len(t, row.Slots(), 3)
}

func TestSortItems(t *testing.T) {
	items := []Item{{ID: 3, Title: "c"}, {ID: 1, Title: "a"}, {ID: 3, Title: "c2"}, {ID: 2, Title: "b"}}
	sorted := SortItems(items)
	assert.Equal(t, []ID{1, 2, 3}, IDsOf(sorted))
	assert.Equal(t, "c2", sorted[2].Title)
}

func TestItem_Ordering(t *testing.T) {
	a := Item{ID: 1, Title: "x"}
	b := Item{ID: 1, Title: "y"}
	c := NewItem(2)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.True(t, a.Less(c))
	assert.Equal(t, "2", c.Title)
}
