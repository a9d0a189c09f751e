package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dom-executor/internal/domain/entity"
	"dom-executor/internal/infrastructure/channel"
)

func TestNode_Attributes(t *testing.T) {
	n := NewNode()

	assert.False(t, n.HasAttribute("webdriver"))
	n.SetAttribute("webdriver", "")
	assert.True(t, n.HasAttribute("webdriver"))

	v, ok := n.GetAttribute("webdriver")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	n.RemoveAttribute("webdriver")
	assert.False(t, n.HasAttribute("webdriver"))
}

func TestNode_EventListeners(t *testing.T) {
	n := NewNode()
	var order []string

	removeA := n.AddEventListener("ping", func() { order = append(order, "a") })
	n.AddEventListener("ping", func() { order = append(order, "b") })
	assert.Equal(t, 2, n.ListenerCount("ping"))

	n.DispatchEvent("ping")
	removeA()
	n.DispatchEvent("ping")
	n.DispatchEvent("other")

	assert.Equal(t, []string{"a", "b", "b"}, order)
	assert.Equal(t, 1, n.ListenerCount("ping"))
}

func TestNode_NestedDispatch(t *testing.T) {
	n := NewNode()
	var got []string

	n.AddEventListener("outer", func() {
		got = append(got, "outer")
		n.DispatchEvent("inner")
	})
	n.AddEventListener("inner", func() { got = append(got, "inner") })

	n.DispatchEvent("outer")
	assert.Equal(t, []string{"outer", "inner"}, got)
}

func TestChannel_RoundTripWithActor(t *testing.T) {
	ctx := context.Background()
	node := NewNode()
	names := channel.DefaultNames()
	ch := New(node, names, "Firefox")

	actor := Attach(node, names, func(cmd entity.Payload) string {
		return Success(string(cmd.Name))
	})
	defer actor.Detach()

	signals := 0
	unsubscribe, err := ch.OnResponse(func() { signals++ })
	require.NoError(t, err)

	require.NoError(t, ch.WriteCommand(ctx, `{"name":"getTitle","parameters":{}}`))
	require.NoError(t, ch.RaiseCommand(ctx))

	assert.Equal(t, 1, signals)
	raw, err := ch.ReadResponse(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":0,"value":"getTitle"}`, raw)

	require.NoError(t, ch.ClearResponse(ctx))
	require.NoError(t, ch.ClearCommand(ctx))
	assert.False(t, node.HasAttribute(names.CommandAttribute))
	assert.False(t, node.HasAttribute(names.ResponseAttribute))

	require.NoError(t, unsubscribe())
	require.NoError(t, ch.RaiseCommand(ctx))
	assert.Equal(t, 1, signals)
	assert.Len(t, actor.Received(), 2)
}

func TestChannel_Probe(t *testing.T) {
	ctx := context.Background()
	node := NewNode()
	ch := New(node, channel.Names{}, "Firefox")

	a, err := ch.Probe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Firefox", a.BrowserFamily)
	assert.True(t, a.HasDocument)
	assert.False(t, a.HasAttribute("webdriver"))

	actor := Attach(node, channel.Names{}, func(entity.Payload) string { return "" })
	a, err = ch.Probe(ctx)
	require.NoError(t, err)
	assert.True(t, a.HasAttribute("webdriver"))

	actor.Detach()
	a, err = ch.Probe(ctx)
	require.NoError(t, err)
	assert.False(t, a.HasAttribute("webdriver"))
}

func TestActor_HoldAndFlush(t *testing.T) {
	ctx := context.Background()
	node := NewNode()
	ch := New(node, channel.Names{}, "Firefox")
	actor := Attach(node, channel.Names{}, func(entity.Payload) string { return Success(1) })

	signals := 0
	_, err := ch.OnResponse(func() { signals++ })
	require.NoError(t, err)

	actor.Hold()
	require.NoError(t, ch.RaiseCommand(ctx))
	assert.Equal(t, 0, signals)

	actor.Flush()
	assert.Equal(t, 1, signals)
}

func TestFailure(t *testing.T) {
	assert.JSONEq(t,
		`{"status":7,"value":{"message":"Unable to locate element"}}`,
		Failure(entity.CodeNoSuchElement, "Unable to locate element"))
}
