package cmd

import (
	"encoding/json"
	"fmt"

	"movie-grid/core/reconcile"

	"github.com/spf13/cobra"
)

var (
	// Flags for the plan command
	planColumns int
	planOld     []int
	planNew     []int
	planActive  []int
	planFilter  []int
	planJSON    bool
)

// planCmd prints the plan one row computes for a single update.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the actions a row plans for an update",
	Long: `Reconcile one row from its current items to new items and print the plan.

The row starts with --old. --active defaults to --old and lists the ids shown
anywhere in the grid; ids in --filter are being removed from display.

Examples:
  # An id sorting in between pushes 3 to the right
  plan --columns 3 --old 1,3 --new 1,2,3

  # Filtering 1 deletes it and shifts the rest left
  plan --columns 3 --old 1,2,3 --new 2,3 --filter 1

  # 4 arrives from the previous row through the left sideboard
  plan --columns 3 --old 5,6 --new 4,5 --active 4,5,6,7 --json`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().IntVar(&planColumns, "columns", 5, "Row width")
	planCmd.Flags().IntSliceVar(&planOld, "old", nil, "Ids the row shows now, in column order")
	planCmd.Flags().IntSliceVar(&planNew, "new", nil, "Ids the row should show")
	planCmd.Flags().IntSliceVar(&planActive, "active", nil, "Ids shown anywhere in the grid (defaults to --old)")
	planCmd.Flags().IntSliceVar(&planFilter, "filter", nil, "Ids being filtered out")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the plan as JSON")

	RootCmd.AddCommand(planCmd)
}

func toIDs(values []int) []reconcile.ID {
	ids := make([]reconcile.ID, len(values))
	for i, v := range values {
		ids[i] = reconcile.ID(v)
	}
	return ids
}

func runPlan(cmd *cobra.Command, args []string) error {
	row, err := reconcile.NewRow(planColumns)
	if err != nil {
		return err
	}

	old := reconcile.ItemsFromIDs(toIDs(planOld)...)
	if _, err := row.SetRowItems(old, reconcile.NewIDSet(), reconcile.NewIDSet()); err != nil {
		return fmt.Errorf("invalid --old: %w", err)
	}

	active := reconcile.NewIDSet(toIDs(planActive)...)
	if !cmd.Flags().Changed("active") {
		active = reconcile.NewIDSet(toIDs(planOld)...)
	}

	items := reconcile.SortItems(reconcile.ItemsFromIDs(toIDs(planNew)...))
	plan, err := row.SetRowItems(items, active, reconcile.NewIDSet(toIDs(planFilter)...))
	if err != nil {
		return fmt.Errorf("invalid --new: %w", err)
	}

	out := cmd.OutOrStdout()
	if planJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	for _, line := range plan.Describe() {
		fmt.Fprintln(out, line)
	}
	s := plan.Summary()
	fmt.Fprintf(out, "deletes=%d transposes=%d exits=%d entries=%d creates=%d\n",
		s.Deletes, s.Transposes, s.Exits, s.Entries, s.Creates)
	return nil
}
