package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dom-executor/internal/domain/entity"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	return env
}

func TestChecker_Success(t *testing.T) {
	c := NewChecker()

	resp, err := c.Check(decode(t, `{"status":0,"sessionId":"abc","value":"Example"}`))
	require.NoError(t, err)
	assert.Equal(t, entity.CodeSuccess, resp.Status)
	assert.Equal(t, "abc", resp.SessionID)
	assert.Equal(t, "Example", resp.Value)
}

func TestChecker_SuccessWithObjectValue(t *testing.T) {
	resp, err := NewChecker().Check(decode(t, `{"status":0,"value":{"browserName":"x"}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"browserName": "x"}, resp.Value)
}

func TestChecker_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		code    entity.ErrorCode
		message string
	}{
		{"no such element", `{"status":7,"value":{"message":"Unable to locate element"}}`, entity.CodeNoSuchElement, "Unable to locate element"},
		{"stale element", `{"status":10,"value":{"message":"gone"}}`, entity.CodeStaleElementReference, "gone"},
		{"missing status", `{"value":{"message":"what"}}`, entity.CodeUnknownError, "what"},
		{"non numeric status", `{"status":"bad","value":"oops"}`, entity.CodeUnknownError, "oops"},
		{"numeric string status", `{"status":"7","value":{"message":"missing"}}`, entity.CodeNoSuchElement, "missing"},
		{"scalar value", `{"status":13,"value":"plain text"}`, entity.CodeUnknownError, "plain text"},
		{"no value", `{"status":21}`, entity.CodeTimeout, ""},
		{"object without message", `{"status":8,"value":{}}`, entity.CodeNoSuchFrame, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := NewChecker().Check(decode(t, tt.raw))
			assert.Nil(t, resp)

			var cmdErr *entity.CommandError
			require.True(t, errors.As(err, &cmdErr))
			assert.Equal(t, tt.code, cmdErr.Code)
			assert.Equal(t, tt.message, cmdErr.Message)
		})
	}
}

func TestChecker_ErrorsIsByCode(t *testing.T) {
	_, err := NewChecker().Check(decode(t, `{"status":7,"value":{"message":"nope"}}`))
	assert.ErrorIs(t, err, entity.ErrNoSuchElement)
	assert.NotErrorIs(t, err, entity.ErrNoSuchFrame)
	assert.EqualError(t, err, "no such element: nope")
}

func TestChecker_JSONNumberStatus(t *testing.T) {
	resp, err := NewChecker().Check(map[string]any{"status": json.Number("0"), "value": true})
	require.NoError(t, err)
	assert.Equal(t, true, resp.Value)
}

func TestChecker_NumericStringStatus(t *testing.T) {
	resp, err := NewChecker().Check(decode(t, `{"status":"0","value":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, entity.CodeSuccess, resp.Status)
	assert.Equal(t, "x", resp.Value)
}
