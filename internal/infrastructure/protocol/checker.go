// Package protocol classifies responses of the legacy JSON wire protocol:
// an envelope {status, value, sessionId} where status 0 is success and any
// other status names an error code whose message is value.message.
package protocol

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dom-executor/internal/application/port/output"
	"dom-executor/internal/domain/entity"
)

var _ output.ResponseChecker = (*Checker)(nil)

type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

func (c *Checker) Check(envelope map[string]any) (*entity.Response, error) {
	code, ok := statusCode(envelope["status"])
	if ok && code == entity.CodeSuccess {
		resp := &entity.Response{
			Status: code,
			Value:  envelope["value"],
		}
		if sid, ok := envelope["sessionId"].(string); ok {
			resp.SessionID = sid
		}
		return resp, nil
	}

	if !ok || code == entity.CodeSuccess {
		code = entity.CodeUnknownError
	}
	return nil, &entity.CommandError{Code: code, Message: errorMessage(envelope["value"])}
}

func statusCode(v any) (entity.ErrorCode, bool) {
	switch s := v.(type) {
	case float64:
		if s != math.Trunc(s) {
			return 0, false
		}
		return entity.ErrorCode(s), true
	case int:
		return entity.ErrorCode(s), true
	case entity.ErrorCode:
		return s, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return entity.ErrorCode(n), true
	case json.Number:
		n, err := s.Int64()
		if err != nil {
			return 0, false
		}
		return entity.ErrorCode(n), true
	default:
		return 0, false
	}
}

func errorMessage(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case map[string]any:
		if msg, ok := value["message"]; ok && msg != nil {
			return fmt.Sprint(msg)
		}
		return ""
	default:
		return fmt.Sprint(value)
	}
}
