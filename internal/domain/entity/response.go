package entity

// Payload is the wire form of a Command as written to the command slot.
type Payload struct {
	Name       CommandName    `json:"name"`
	SessionID  string         `json:"sessionId,omitempty"`
	Parameters map[string]any `json:"parameters"`
}

// Response is a successful command result.
type Response struct {
	Status    ErrorCode `json:"status"`
	SessionID string    `json:"sessionId,omitempty"`
	Value     any       `json:"value"`
}

// StringValue reports whether the response value is a plain string.
func (r *Response) StringValue() (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r.Value.(string)
	return s, ok
}

// Availability describes what a channel observed about the page it is
// attached to.
type Availability struct {
	BrowserFamily string
	HasDocument   bool
	Attributes    map[string]bool
}

func (a Availability) HasAttribute(name string) bool {
	return a.Attributes[name]
}
