package reconcile

import (
	"fmt"
	"strings"
)

// Plan contains the actions one row performs during a cycle.
type Plan struct {
	// Columns is the visible width of the row.
	Columns int `json:"columns"`

	// Cells holds the per-column actions, indexed by column.
	Cells []CellActions `json:"cells"`

	// LeftSideboard lists cells entering from the left. Slot 0 is nearest the
	// visible edge.
	LeftSideboard []Action `json:"left_sideboard"`

	// RightSideboard lists cells entering from the right. Slot 0 is nearest the
	// visible edge.
	RightSideboard []Action `json:"right_sideboard"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	Deletes int `json:"deletes"`

	// Transposes counts in-row moves.
	Transposes int `json:"transposes"`

	// Exits counts moves to a virtual column.
	Exits int `json:"exits"`

	// Entries counts sideboard moves into the row.
	Entries int `json:"entries"`

	Creates int `json:"creates"`
}

// Total returns the number of actions counted.
func (s PlanSummary) Total() int {
	return s.Deletes + s.Transposes + s.Exits + s.Entries + s.Creates
}

// Add accumulates other into s.
func (s *PlanSummary) Add(other PlanSummary) {
	s.Deletes += other.Deletes
	s.Transposes += other.Transposes
	s.Exits += other.Exits
	s.Entries += other.Entries
	s.Creates += other.Creates
}

// NewPlan returns an empty plan for a row of columns cells.
func NewPlan(columns int) *Plan {
	return &Plan{
		Columns:        columns,
		Cells:          make([]CellActions, columns),
		LeftSideboard:  []Action{},
		RightSideboard: []Action{},
	}
}

// LeftVirtualColumn maps left sideboard slot k to its virtual column.
func LeftVirtualColumn(slot int) int {
	return -1 - slot
}

// RightVirtualColumn maps right sideboard slot k to its virtual column.
func RightVirtualColumn(columns, slot int) int {
	return columns + slot
}

// IsVirtual reports whether column lies outside a row of columns cells.
func IsVirtual(column, columns int) bool {
	return column < 0 || column >= columns
}

// Actions returns the actions for phase in execution order: columns left to
// right, then for the transpose phase the left and right sideboard entries.
func (p *Plan) Actions(phase Phase) []Action {
	if p == nil {
		return nil
	}
	var actions []Action
	for _, cell := range p.Cells {
		if action := cell.For(phase); action != nil {
			actions = append(actions, *action)
		}
	}
	if phase == PhaseTranspose {
		actions = append(actions, p.LeftSideboard...)
		actions = append(actions, p.RightSideboard...)
	}
	return actions
}

// Summary counts the actions of the plan.
func (p *Plan) Summary() PlanSummary {
	var s PlanSummary
	if p == nil {
		return s
	}
	for _, cell := range p.Cells {
		if cell.Delete != nil {
			s.Deletes++
		}
		if cell.Transpose != nil {
			if IsVirtual(cell.Transpose.MoveTo, p.Columns) {
				s.Exits++
			} else {
				s.Transposes++
			}
		}
		if cell.Create != nil {
			s.Creates++
		}
	}
	s.Entries = len(p.LeftSideboard) + len(p.RightSideboard)
	return s
}

// Empty reports whether the plan has no actions at all.
func (p *Plan) Empty() bool {
	return p.Summary().Total() == 0
}

// Describe renders one line per column and per sideboard slot.
func (p *Plan) Describe() []string {
	if p == nil {
		return nil
	}
	lines := make([]string, 0, len(p.Cells)+len(p.LeftSideboard)+len(p.RightSideboard))
	for i, cell := range p.Cells {
		if cell.Empty() {
			lines = append(lines, fmt.Sprintf("column %d: idle", i))
			continue
		}
		var parts []string
		if cell.Delete != nil {
			parts = append(parts, fmt.Sprintf("delete %d", cell.Delete.Item.ID))
		}
		if cell.Transpose != nil {
			parts = append(parts, fmt.Sprintf("move %d to %d", cell.Transpose.Item.ID, cell.Transpose.MoveTo))
		}
		if cell.Create != nil {
			parts = append(parts, fmt.Sprintf("create %d", cell.Create.Item.ID))
		}
		lines = append(lines, fmt.Sprintf("column %d: %s", i, strings.Join(parts, ", ")))
	}
	for k, action := range p.LeftSideboard {
		lines = append(lines, fmt.Sprintf("left sideboard %d: bring %d from %d to %d", k, action.Item.ID, action.Column, action.MoveTo))
	}
	for k, action := range p.RightSideboard {
		lines = append(lines, fmt.Sprintf("right sideboard %d: bring %d from %d to %d", k, action.Item.ID, action.Column, action.MoveTo))
	}
	return lines
}

// String joins Describe with newlines.
func (p *Plan) String() string {
	return strings.Join(p.Describe(), "\n")
}
