// Package view builds the render-agnostic checklist document published to
// the user's home surface. Building is a pure function of the catalog, the
// resources map, and the completed set; the same inputs always produce the
// same document.
package view

// Document is the full home-surface view, published wholesale on every
// render (never patched incrementally).
type Document struct {
	Type   string  `json:"type"`
	Blocks []Block `json:"blocks"`
}

// Block is one layout block of the document.
type Block struct {
	Type     string    `json:"type"`
	Text     *Text     `json:"text,omitempty"`
	Elements []Element `json:"elements,omitempty"`
}

// Text is a typed text object (plain_text or mrkdwn).
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Element is an interactive or display element inside a block.
// InitialOptions must be omitted entirely when no option is pre-checked; an
// empty list is structurally invalid for the rendering sink.
type Element struct {
	Type           string   `json:"type"`
	ActionID       string   `json:"action_id,omitempty"`
	Options        []Option `json:"options,omitempty"`
	InitialOptions []Option `json:"initial_options,omitempty"`
	Text           string   `json:"text,omitempty"`
}

// Option is one selectable entry of a checkbox element. Value carries the
// task id.
type Option struct {
	Text  Text   `json:"text"`
	Value string `json:"value"`
}
