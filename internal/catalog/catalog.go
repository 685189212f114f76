// Package catalog defines the fixed onboarding checklist: the ordered task
// definitions, their grouping, and the static resources shown in the
// checklist footer. The catalog is compiled in and never mutated at runtime.
package catalog

import "strings"

// Task is a single onboarding checklist item.
type Task struct {
	ID    string
	Label string
	Group string
}

// Catalog is the ordered list of task definitions. Task IDs are unique across
// the catalog and group display order is the order of first appearance.
type Catalog []Task

// Default returns the compiled-in onboarding catalog.
func Default() Catalog {
	admin := DefaultResources().AdminEmail
	return Catalog{
		// Step 1: Paperwork & Documents
		{ID: "welcome_letter", Label: "Sign Welcome Letter", Group: "Paperwork"},
		{ID: "nda", Label: "Sign NDA", Group: "Paperwork"},
		{ID: "offer_letter", Label: "Sign Offer Letter", Group: "Paperwork"},
		{ID: "volunteer_agreement", Label: "Sign Volunteer Agreement", Group: "Paperwork"},
		{ID: "contract", Label: "Sign Contract (duties and responsibilities)", Group: "Paperwork"},
		{ID: "upload_docs", Label: "Upload docs & share with " + admin, Group: "Paperwork"},

		// Step 2: Onboarding & Integration
		{ID: "staff_directory", Label: "Review Staff Directory", Group: "Integration"},
		{ID: "chapter_handbook", Label: "Read Chapter Handbook", Group: "Integration"},
		{ID: "brand_center", Label: "Explore Brand Center", Group: "Integration"},
		{ID: "pd_recordings", Label: "Watch Professional Development Recordings", Group: "Integration"},

		// Step 3: Workflow & Role Setup
		{ID: "role_checklist", Label: "Review your role-specific checklist", Group: "Workflow"},
		{ID: "setup_workflow", Label: "Set up your role workflows and tools", Group: "Workflow"},

		// Step 4: Connection & Culture
		{ID: "coffee_chat_1", Label: "Coffee Chat #1 with a team member", Group: "Culture"},
		{ID: "coffee_chat_2", Label: "Coffee Chat #2 with a team member", Group: "Culture"},
		{ID: "coffee_chat_3", Label: "Coffee Chat #3 with a team member", Group: "Culture"},
	}
}

// Size returns the number of tasks in the catalog.
func (c Catalog) Size() int {
	return len(c)
}

// TaskIDs returns every task id in catalog order.
func (c Catalog) TaskIDs() []string {
	ids := make([]string, 0, len(c))
	for _, t := range c {
		ids = append(ids, t.ID)
	}
	return ids
}

// GroupNames returns group names in order of first appearance.
func (c Catalog) GroupNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, t := range c {
		if !seen[t.Group] {
			seen[t.Group] = true
			names = append(names, t.Group)
		}
	}
	return names
}

// GroupTasks returns the tasks belonging to the given group, in catalog order.
func (c Catalog) GroupTasks(group string) []Task {
	var tasks []Task
	for _, t := range c {
		if t.Group == group {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// GroupTaskIDs returns the set of task ids belonging to the given group.
func (c Catalog) GroupTaskIDs(group string) map[string]bool {
	ids := make(map[string]bool)
	for _, t := range c {
		if t.Group == group {
			ids[t.ID] = true
		}
	}
	return ids
}

// FindGroup resolves a group name case-insensitively and returns the
// canonical catalog spelling. The second return is false if no group matches.
func (c Catalog) FindGroup(name string) (string, bool) {
	for _, g := range c.GroupNames() {
		if strings.EqualFold(g, name) {
			return g, true
		}
	}
	return "", false
}
