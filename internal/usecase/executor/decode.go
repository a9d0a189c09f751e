package executor

import (
	"context"
	"encoding/json"
	"fmt"

	"dom-executor/internal/domain/entity"
)

// decode reads the response slot, clears both slots and classifies the
// payload. It must only run once the tracker is idle again.
func (e *Executor) decode(ctx context.Context, name entity.CommandName) (*entity.Response, error) {
	raw, readErr := e.channel.ReadResponse(ctx)

	if err := e.channel.ClearResponse(ctx); err != nil {
		e.logger.Warn("Failed to clear response slot", "command", name, "error", err)
	}
	if err := e.channel.ClearCommand(ctx); err != nil {
		e.logger.Warn("Failed to clear command slot", "command", name, "error", err)
	}

	if readErr != nil {
		return nil, fmt.Errorf("%w: read response: %w", entity.ErrTransport, readErr)
	}
	if raw == "" {
		return nil, entity.ErrEmptyResponse
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrMalformedResponse, err)
	}
	if envelope == nil {
		return nil, fmt.Errorf("%w: response is not an object", entity.ErrMalformedResponse)
	}

	return e.checker.Check(envelope)
}
