// Package scenario runs scripted grid sessions.
//
// A script is a YAML document naming a grid size and a list of steps. Each step
// performs at most one action (add, filter or resize) and may check what the
// grid shows once the resulting cycles have finished:
//
//	name: simple-transpose
//	grid: {rows: 1, columns: 3}
//	steps:
//	  - add: [1, 3]
//	  - add: [2]
//	    expect:
//	      rows: [[1, 2, 3]]
//	      summary: {transposes: 1, creates: 1}
//
// The Runner drives the real catalog, update gate, grid and row views. After
// every waited step it also checks that the grid holds no duplicate ids, never
// exceeds its capacity and shows ids in ascending row-major order.
package scenario
