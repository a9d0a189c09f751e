package memory

import "sync"

// Node is an in-process stand-in for a document root element: string
// attributes plus named events with synchronous listeners.
type Node struct {
	mu        sync.Mutex
	attrs     map[string]string
	listeners map[string][]*listener
}

type listener struct {
	fn func()
}

func NewNode() *Node {
	return &Node{
		attrs:     make(map[string]string),
		listeners: make(map[string][]*listener),
	}
}

func (n *Node) SetAttribute(name, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attrs[name] = value
}

func (n *Node) GetAttribute(name string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

func (n *Node) RemoveAttribute(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.attrs, name)
}

// AddEventListener registers fn for event and returns a func removing it.
func (n *Node) AddEventListener(event string, fn func()) (remove func()) {
	l := &listener{fn: fn}

	n.mu.Lock()
	n.listeners[event] = append(n.listeners[event], l)
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		ls := n.listeners[event]
		for i, other := range ls {
			if other == l {
				n.listeners[event] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// DispatchEvent runs every listener for event on the calling goroutine, in
// registration order. Listeners may dispatch further events.
func (n *Node) DispatchEvent(event string) {
	n.mu.Lock()
	ls := append([]*listener(nil), n.listeners[event]...)
	n.mu.Unlock()

	for _, l := range ls {
		l.fn()
	}
}

func (n *Node) ListenerCount(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners[event])
}
