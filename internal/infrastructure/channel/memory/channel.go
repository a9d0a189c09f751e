// Package memory implements the command channel over an in-process Node.
// Two parties sharing one Node exchange commands exactly as they would over
// a page's document root, without a browser.
package memory

import (
	"context"

	"dom-executor/internal/application/port/output"
	"dom-executor/internal/domain/entity"
	"dom-executor/internal/infrastructure/channel"
)

var _ output.ChannelPort = (*Channel)(nil)

type Channel struct {
	node   *Node
	names  channel.Names
	family string
}

func New(node *Node, names channel.Names, browserFamily string) *Channel {
	return &Channel{
		node:   node,
		names:  names.WithDefaults(),
		family: browserFamily,
	}
}

func (c *Channel) WriteCommand(_ context.Context, payload string) error {
	c.node.SetAttribute(c.names.CommandAttribute, payload)
	return nil
}

func (c *Channel) RaiseCommand(_ context.Context) error {
	c.node.DispatchEvent(c.names.CommandEvent)
	return nil
}

func (c *Channel) ReadResponse(_ context.Context) (string, error) {
	v, _ := c.node.GetAttribute(c.names.ResponseAttribute)
	return v, nil
}

func (c *Channel) ClearCommand(_ context.Context) error {
	c.node.RemoveAttribute(c.names.CommandAttribute)
	return nil
}

func (c *Channel) ClearResponse(_ context.Context) error {
	c.node.RemoveAttribute(c.names.ResponseAttribute)
	return nil
}

func (c *Channel) OnResponse(fn func()) (func() error, error) {
	remove := c.node.AddEventListener(c.names.ResponseEvent, fn)
	return func() error {
		remove()
		return nil
	}, nil
}

func (c *Channel) Probe(_ context.Context) (entity.Availability, error) {
	if c.node == nil {
		return entity.Availability{BrowserFamily: c.family}, nil
	}
	return entity.Availability{
		BrowserFamily: c.family,
		HasDocument:   true,
		Attributes: map[string]bool{
			c.names.MarkerAttribute: c.node.HasAttribute(c.names.MarkerAttribute),
		},
	}, nil
}
