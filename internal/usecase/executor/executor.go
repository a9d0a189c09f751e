package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"dom-executor/internal/application/port/input"
	"dom-executor/internal/application/port/output"
	"dom-executor/internal/domain/entity"
	"dom-executor/internal/domain/promise"
)

var _ input.CommandExecutor = (*Executor)(nil)

const (
	DefaultBrowserFamily   = "Firefox"
	DefaultMarkerAttribute = "webdriver"
)

type Options struct {
	// BrowserFamily must appear in the probed browser family. Empty accepts
	// any browser.
	BrowserFamily   string
	MarkerAttribute string
}

func DefaultOptions() Options {
	return Options{
		BrowserFamily:   DefaultBrowserFamily,
		MarkerAttribute: DefaultMarkerAttribute,
	}
}

type pendingCommand struct {
	name     entity.CommandName
	deferred *promise.Deferred[*entity.Response]
}

// Executor sends commands over a ChannelPort and allows at most one of them
// to be outstanding at a time.
type Executor struct {
	ctx         context.Context
	channel     output.ChannelPort
	checker     output.ResponseChecker
	logger      output.LoggerPort
	unsubscribe func() error

	mu      sync.Mutex
	pending *pendingCommand
	closed  bool
}

// IsAvailable reports whether a channel in state a can carry commands.
func IsAvailable(a entity.Availability, opts Options) bool {
	if opts.BrowserFamily != "" &&
		!strings.Contains(strings.ToLower(a.BrowserFamily), strings.ToLower(opts.BrowserFamily)) {
		return false
	}
	marker := opts.MarkerAttribute
	if marker == "" {
		marker = DefaultMarkerAttribute
	}
	return a.HasDocument && a.HasAttribute(marker)
}

// New probes the channel and subscribes to its response signal. It fails
// with entity.ErrNotAvailable when no external actor is attached.
//
// ctx is used for every channel call the executor makes, including those
// made later from Execute and from the response signal.
func New(
	ctx context.Context,
	channel output.ChannelPort,
	checker output.ResponseChecker,
	logger output.LoggerPort,
	opts Options,
) (*Executor, error) {
	availability, err := channel.Probe(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe channel: %w", err)
	}
	if !IsAvailable(availability, opts) {
		return nil, fmt.Errorf("%w (browser %q, document %t)",
			entity.ErrNotAvailable, availability.BrowserFamily, availability.HasDocument)
	}

	e := &Executor{
		ctx:     ctx,
		channel: channel,
		checker: checker,
		logger:  logger.WithField("component", "executor"),
	}

	e.unsubscribe, err = channel.OnResponse(e.onResponse)
	if err != nil {
		return nil, fmt.Errorf("subscribe to responses: %w", err)
	}

	e.logger.Debug("Executor attached", "browser", availability.BrowserFamily)
	return e, nil
}

// Execute issues cmd and returns a future for its response. It fails with
// entity.ErrCommandPending, leaving the outstanding command untouched, if
// another command has not been answered yet.
func (e *Executor) Execute(cmd entity.Command) (*promise.Future[*entity.Response], error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, entity.ErrClosed
	}
	if e.pending != nil {
		awaiting := e.pending.name
		e.mu.Unlock()
		e.logger.Warn("Command rejected while awaiting a response", "command", cmd.Name, "awaiting", awaiting)
		return nil, fmt.Errorf("execute %s: %w (%s)", cmd.Name, entity.ErrCommandPending, awaiting)
	}

	payload, err := encode(cmd)
	if err != nil {
		e.mu.Unlock()
		e.logger.Error("Command could not be encoded", "command", cmd.Name, "error", err)
		failed := promise.New[*entity.Response]()
		failed.Reject(err)
		return failed.Future(), nil
	}

	pending := &pendingCommand{
		name:     cmd.Name,
		deferred: promise.New[*entity.Response](),
	}
	e.pending = pending
	e.mu.Unlock()

	// The actor may answer before RaiseCommand returns, so hold on to the
	// future before dispatching.
	future := pending.deferred.Future()

	e.logger.Debug("Issuing command", "command", cmd.Name, "session", cmd.SessionID)
	if err := e.dispatch(payload); err != nil {
		e.abandon(pending, err)
	}
	return future, nil
}

func (e *Executor) dispatch(payload string) error {
	if err := e.channel.WriteCommand(e.ctx, payload); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	if err := e.channel.RaiseCommand(e.ctx); err != nil {
		return fmt.Errorf("raise command: %w", err)
	}
	return nil
}

func (e *Executor) abandon(pending *pendingCommand, cause error) {
	e.mu.Lock()
	if e.pending == pending {
		e.pending = nil
	}
	e.mu.Unlock()

	e.logger.Error("Command dispatch failed", "command", pending.name, "error", cause)
	pending.deferred.Reject(fmt.Errorf("%w: %w", entity.ErrTransport, cause))
}

func (e *Executor) onResponse() {
	e.mu.Lock()
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	if pending == nil {
		e.logger.Debug("Response signal without a pending command, ignored")
		return
	}

	resp, err := e.decode(e.ctx, pending.name)
	if err != nil {
		e.logger.Info("Command failed", "command", pending.name, "error", err)
		pending.deferred.Reject(err)
		return
	}

	if sessionID, ok := resp.StringValue(); ok && pending.name == entity.CmdNewSession {
		e.describeSession(pending, sessionID)
		return
	}

	e.logger.Debug("Command completed", "command", pending.name)
	pending.deferred.Resolve(resp)
}

// describeSession finishes a two-step session start: older drivers answer
// newSession with a bare session id and need a getSessionCapabilities
// round trip for the capabilities.
func (e *Executor) describeSession(pending *pendingCommand, sessionID string) {
	e.logger.Debug("Session allocated, fetching capabilities", "session", sessionID)

	cmd := entity.NewCommand(entity.CmdDescribeSession).
		WithSessionID(sessionID).
		WithParameter(entity.ParamSessionID, sessionID)

	next, err := e.Execute(cmd)
	if err != nil {
		pending.deferred.Reject(fmt.Errorf("describe session %s: %w", sessionID, err))
		return
	}
	pending.deferred.Follow(next)
}

// Pending returns the name of the outstanding command, if any.
func (e *Executor) Pending() (entity.CommandName, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending == nil {
		return "", false
	}
	return e.pending.name, true
}

// Close unsubscribes from the response signal. An outstanding command's
// future stays unsettled.
func (e *Executor) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	if e.unsubscribe == nil {
		return nil
	}
	return e.unsubscribe()
}
