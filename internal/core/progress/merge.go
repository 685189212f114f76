// Package progress contains the pure business logic for group-scoped
// checklist updates. The merge is a pure function over sets; it performs no
// I/O and takes no locks.
package progress

// MergeContext provides the inputs for a scoped-replace merge.
type MergeContext struct {
	// Current is the user's currently completed task ids across the whole
	// catalog.
	Current map[string]bool
	// GroupIDs is the set of task ids belonging to the group being toggled.
	GroupIDs map[string]bool
	// Selected is the set of option values the control reported as checked.
	// The control reports only its own group's state.
	Selected []string
}

// Merge computes the new completed set for the whole catalog: completion
// state for tasks in the acting group is replaced by exactly the reported
// selection, while tasks outside the group keep their current state.
// Selected values that do not belong to the acting group are dropped.
func Merge(ctx MergeContext) map[string]bool {
	newDone := make(map[string]bool, len(ctx.Current))

	for id := range ctx.Current {
		if !ctx.GroupIDs[id] {
			newDone[id] = true
		}
	}

	for _, id := range ctx.Selected {
		if ctx.GroupIDs[id] {
			newDone[id] = true
		}
	}

	return newDone
}
