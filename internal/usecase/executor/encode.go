package executor

import (
	"encoding/json"
	"fmt"

	"dom-executor/internal/domain/entity"
)

// encode builds the command slot payload for cmd.
//
// Element ids arriving over HTTP are decoded by the driver as a bare
// string, so {"ELEMENT": x} in "id" is flattened to x. switchToFrame is the
// exception: its element id never travels in a URL and keeps the
// structured form.
func encode(cmd entity.Command) (string, error) {
	params := make(map[string]any, len(cmd.Parameters))
	for k, v := range cmd.Parameters {
		params[k] = v
	}

	if cmd.Name != entity.CmdSwitchToFrame {
		if id, ok := elementID(params[entity.ParamID]); ok {
			params[entity.ParamID] = id
		}
	}

	sessionID := cmd.SessionID
	if sessionID == "" {
		sessionID, _ = params[entity.ParamSessionID].(string)
	}

	data, err := json.Marshal(entity.Payload{
		Name:       cmd.Name,
		SessionID:  sessionID,
		Parameters: params,
	})
	if err != nil {
		return "", fmt.Errorf("marshal %s payload: %w", cmd.Name, err)
	}
	return string(data), nil
}

func elementID(v any) (any, bool) {
	switch ref := v.(type) {
	case map[string]any:
		id, ok := ref[entity.ParamElement]
		return id, ok
	case map[string]string:
		id, ok := ref[entity.ParamElement]
		return id, ok
	default:
		return nil, false
	}
}
