// Package channel holds what the DOM-backed channel implementations share:
// the attribute and event names both sides of the bridge agree on.
package channel

type Names struct {
	CommandAttribute  string
	ResponseAttribute string
	MarkerAttribute   string
	CommandEvent      string
	ResponseEvent     string
}

func DefaultNames() Names {
	return Names{
		CommandAttribute:  "command",
		ResponseAttribute: "response",
		MarkerAttribute:   "webdriver",
		CommandEvent:      "webdriverCommand",
		ResponseEvent:     "webdriverResponse",
	}
}

// WithDefaults fills empty names from DefaultNames.
func (n Names) WithDefaults() Names {
	d := DefaultNames()
	if n.CommandAttribute == "" {
		n.CommandAttribute = d.CommandAttribute
	}
	if n.ResponseAttribute == "" {
		n.ResponseAttribute = d.ResponseAttribute
	}
	if n.MarkerAttribute == "" {
		n.MarkerAttribute = d.MarkerAttribute
	}
	if n.CommandEvent == "" {
		n.CommandEvent = d.CommandEvent
	}
	if n.ResponseEvent == "" {
		n.ResponseEvent = d.ResponseEvent
	}
	return n
}
