// Package page implements the command channel on a live browser page driven
// through go-rod. Slots are attributes of document.documentElement and
// signals are DOM events dispatched on it.
package page

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"dom-executor/internal/application/port/output"
	"dom-executor/internal/domain/entity"
	"dom-executor/internal/infrastructure/channel"
)

var _ output.ChannelPort = (*Channel)(nil)

const (
	jsSetAttribute    = `(name, value) => document.documentElement.setAttribute(name, value)`
	jsGetAttribute    = `(name) => document.documentElement.getAttribute(name)`
	jsRemoveAttribute = `(name) => document.documentElement.removeAttribute(name)`
	jsDispatch        = `(type) => {
		const event = new Event(type, { bubbles: true, cancelable: true });
		document.documentElement.dispatchEvent(event);
	}`
	jsSubscribe = `(type, binding) => {
		const handler = () => { window[binding](); };
		window[binding + "Handler"] = handler;
		document.documentElement.addEventListener(type, handler, false);
	}`
	jsUnsubscribe = `(type, binding) => {
		const handler = window[binding + "Handler"];
		if (handler) {
			document.documentElement.removeEventListener(type, handler, false);
			delete window[binding + "Handler"];
		}
	}`
	jsProbe = `(marker) => {
		const root = typeof document !== "undefined" ? document.documentElement : null;
		const live = !!root && typeof root.hasAttribute === "function";
		return { hasDocument: live, marked: live && root.hasAttribute(marker) };
	}`
)

type Channel struct {
	page    *rod.Page
	names   channel.Names
	binding string
}

func New(page *rod.Page, names channel.Names) *Channel {
	names = names.WithDefaults()
	return &Channel{
		page:    page,
		names:   names,
		binding: "__domexec_" + names.ResponseEvent,
	}
}

func (c *Channel) eval(ctx context.Context, js string, args ...interface{}) (*proto.RuntimeRemoteObject, error) {
	return c.page.Context(ctx).Eval(js, args...)
}

func (c *Channel) WriteCommand(ctx context.Context, payload string) error {
	if _, err := c.eval(ctx, jsSetAttribute, c.names.CommandAttribute, payload); err != nil {
		return fmt.Errorf("set %s attribute: %w", c.names.CommandAttribute, err)
	}
	return nil
}

func (c *Channel) RaiseCommand(ctx context.Context) error {
	if _, err := c.eval(ctx, jsDispatch, c.names.CommandEvent); err != nil {
		return fmt.Errorf("dispatch %s: %w", c.names.CommandEvent, err)
	}
	return nil
}

func (c *Channel) ReadResponse(ctx context.Context) (string, error) {
	res, err := c.eval(ctx, jsGetAttribute, c.names.ResponseAttribute)
	if err != nil {
		return "", fmt.Errorf("get %s attribute: %w", c.names.ResponseAttribute, err)
	}
	if res.Value.Nil() {
		return "", nil
	}
	return res.Value.Str(), nil
}

func (c *Channel) ClearCommand(ctx context.Context) error {
	return c.remove(ctx, c.names.CommandAttribute)
}

func (c *Channel) ClearResponse(ctx context.Context) error {
	return c.remove(ctx, c.names.ResponseAttribute)
}

func (c *Channel) remove(ctx context.Context, name string) error {
	if _, err := c.eval(ctx, jsRemoveAttribute, name); err != nil {
		return fmt.Errorf("remove %s attribute: %w", name, err)
	}
	return nil
}

// OnResponse exposes a page binding and listens for the response event on
// the current document. fn runs on rod's event goroutine.
func (c *Channel) OnResponse(fn func()) (func() error, error) {
	stop, err := c.page.Expose(c.binding, func(gson.JSON) (interface{}, error) {
		fn()
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("expose %s: %w", c.binding, err)
	}

	if _, err := c.page.Eval(jsSubscribe, c.names.ResponseEvent, c.binding); err != nil {
		_ = stop()
		return nil, fmt.Errorf("listen for %s: %w", c.names.ResponseEvent, err)
	}

	return func() error {
		if _, err := c.page.Eval(jsUnsubscribe, c.names.ResponseEvent, c.binding); err != nil {
			return fmt.Errorf("stop listening for %s: %w", c.names.ResponseEvent, err)
		}
		return stop()
	}, nil
}

func (c *Channel) Probe(ctx context.Context) (entity.Availability, error) {
	version, err := proto.BrowserGetVersion{}.Call(c.page.Browser().Context(ctx))
	if err != nil {
		return entity.Availability{}, fmt.Errorf("browser version: %w", err)
	}

	res, err := c.eval(ctx, jsProbe, c.names.MarkerAttribute)
	if err != nil {
		return entity.Availability{}, fmt.Errorf("probe document: %w", err)
	}

	return entity.Availability{
		BrowserFamily: version.Product,
		HasDocument:   res.Value.Get("hasDocument").Bool(),
		Attributes: map[string]bool{
			c.names.MarkerAttribute: res.Value.Get("marked").Bool(),
		},
	}, nil
}
