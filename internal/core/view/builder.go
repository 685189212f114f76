package view

import (
	"fmt"
	"strings"

	"github.com/example/onboard/internal/catalog"
)

// toggleActionIDPrefix prefixes the action id of every group's checkbox
// element; the suffix is the lowercased group name.
const toggleActionIDPrefix = "task_toggle_"

const (
	headerText  = "Onboarding Checklist"
	welcomeText = "Welcome to the team. Check items as you complete them. Your progress saves automatically."
)

// ToggleActionID returns the action id for a group's checkbox element.
func ToggleActionID(group string) string {
	return toggleActionIDPrefix + strings.ToLower(group)
}

// ParseToggleActionID extracts the group key from a toggle action id.
// Returns false if the id is not a toggle action.
func ParseToggleActionID(actionID string) (string, bool) {
	if !strings.HasPrefix(actionID, toggleActionIDPrefix) {
		return "", false
	}
	return strings.TrimPrefix(actionID, toggleActionIDPrefix), true
}

// Build renders the checklist document for one user. completed holds the
// task ids marked done; ids not present in the catalog are ignored, so
// orphaned rows from a removed task never surface. Build never fails and
// performs no I/O.
func Build(c catalog.Catalog, res catalog.Resources, completed map[string]bool) *Document {
	doneCount := 0
	for _, t := range c {
		if completed[t.ID] {
			doneCount++
		}
	}

	blocks := []Block{
		{Type: "header", Text: &Text{Type: "plain_text", Text: headerText}},
		{Type: "section", Text: &Text{Type: "mrkdwn", Text: welcomeText}},
		{Type: "section", Text: &Text{Type: "mrkdwn", Text: fmt.Sprintf("*Progress:* %d/%d completed", doneCount, c.Size())}},
	}

	for _, group := range c.GroupNames() {
		tasks := c.GroupTasks(group)

		groupDone := 0
		for _, t := range tasks {
			if completed[t.ID] {
				groupDone++
			}
		}

		blocks = append(blocks, Block{
			Type: "section",
			Text: &Text{Type: "mrkdwn", Text: fmt.Sprintf("*%s* (%d/%d)", group, groupDone, len(tasks))},
		})

		checkboxes := Element{
			Type:     "checkboxes",
			ActionID: ToggleActionID(group),
		}
		for _, t := range tasks {
			opt := Option{Text: Text{Type: "plain_text", Text: t.Label}, Value: t.ID}
			checkboxes.Options = append(checkboxes.Options, opt)
			if completed[t.ID] {
				checkboxes.InitialOptions = append(checkboxes.InitialOptions, opt)
			}
		}

		blocks = append(blocks, Block{Type: "actions", Elements: []Element{checkboxes}})
	}

	blocks = append(blocks, Block{
		Type:     "context",
		Elements: []Element{{Type: "mrkdwn", Text: "Resources: " + res.Line(" • ")}},
	})

	return &Document{Type: "home", Blocks: blocks}
}
