package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"dom-executor/internal/domain/entity"
	"dom-executor/internal/infrastructure/channel"
)

// Handler computes the raw response written for a command. Returning ""
// leaves the response slot empty while still raising the response signal.
type Handler func(cmd entity.Payload) string

// Actor plays the external side of the bridge on a Node: it marks the node
// as attached, answers command signals and raises response signals.
//
// By default answers are written synchronously inside the command dispatch.
// After Hold, answers queue up until Flush.
type Actor struct {
	node    *Node
	names   channel.Names
	handler Handler
	remove  func()

	mu       sync.Mutex
	held     bool
	queue    []string
	received []entity.Payload
}

func Attach(node *Node, names channel.Names, handler Handler) *Actor {
	a := &Actor{
		node:    node,
		names:   names.WithDefaults(),
		handler: handler,
	}
	node.SetAttribute(a.names.MarkerAttribute, "")
	a.remove = node.AddEventListener(a.names.CommandEvent, a.onCommand)
	return a
}

func (a *Actor) onCommand() {
	raw, _ := a.node.GetAttribute(a.names.CommandAttribute)

	var cmd entity.Payload
	if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
		cmd = entity.Payload{}
	}
	response := a.handler(cmd)

	a.mu.Lock()
	a.received = append(a.received, cmd)
	if a.held {
		a.queue = append(a.queue, response)
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	a.respond(response)
}

func (a *Actor) respond(response string) {
	if response != "" {
		a.node.SetAttribute(a.names.ResponseAttribute, response)
	}
	a.node.DispatchEvent(a.names.ResponseEvent)
}

// Hold queues answers instead of sending them.
func (a *Actor) Hold() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.held = true
}

// Flush stops holding and sends every queued answer in order.
func (a *Actor) Flush() {
	a.mu.Lock()
	queue := a.queue
	a.queue = nil
	a.held = false
	a.mu.Unlock()

	for _, response := range queue {
		a.respond(response)
	}
}

// Signal raises a bare response signal without touching the response slot.
func (a *Actor) Signal() {
	a.node.DispatchEvent(a.names.ResponseEvent)
}

func (a *Actor) Received() []entity.Payload {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]entity.Payload(nil), a.received...)
}

func (a *Actor) Detach() {
	a.remove()
	a.node.RemoveAttribute(a.names.MarkerAttribute)
}

// Success encodes a status 0 response carrying value.
func Success(value any) string {
	return encodeEnvelope(map[string]any{"status": entity.CodeSuccess, "value": value})
}

// Failure encodes a checked failure with the given code and message.
func Failure(code entity.ErrorCode, message string) string {
	return encodeEnvelope(map[string]any{
		"status": code,
		"value":  map[string]any{"message": message},
	})
}

func encodeEnvelope(env map[string]any) string {
	data, err := json.Marshal(env)
	if err != nil {
		panic(fmt.Sprintf("memory: encode response: %v", err))
	}
	return string(data)
}
