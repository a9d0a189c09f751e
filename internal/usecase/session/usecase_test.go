package session

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dom-executor/internal/domain/entity"
	"dom-executor/internal/infrastructure/channel"
	"dom-executor/internal/infrastructure/channel/memory"
	"dom-executor/internal/infrastructure/logger"
	"dom-executor/internal/infrastructure/protocol"
	"dom-executor/internal/infrastructure/userinteraction"
	"dom-executor/internal/usecase/executor"
)

func init() {
	color.NoColor = true
}

func newExecutor(t *testing.T, handler memory.Handler) (*executor.Executor, *memory.Actor) {
	t.Helper()
	node := memory.NewNode()
	names := channel.DefaultNames()
	actor := memory.Attach(node, names, handler)

	exec, err := executor.New(context.Background(), memory.New(node, names, "Firefox"),
		protocol.NewChecker(), logger.NewNop(), executor.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = exec.Close() })
	return exec, actor
}

func TestUseCase_Run(t *testing.T) {
	exec, actor := newExecutor(t, func(cmd entity.Payload) string {
		switch cmd.Name {
		case entity.CmdGetTitle:
			return memory.Success("Example")
		case entity.CmdNewSession:
			return memory.Success("abc-123")
		case entity.CmdDescribeSession:
			return memory.Success(map[string]any{"browserName": "x"})
		}
		return memory.Failure(entity.CodeUnknownCommand, "unknown command "+string(cmd.Name))
	})

	in := strings.NewReader(strings.Join([]string{
		"newSession",
		"getTitle",
		"bogus",
		"not a command",
	}, "\n"))
	var out bytes.Buffer

	uc := New(exec, userinteraction.NewConsole(in, &out), logger.NewNop())
	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Executed)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, actor.Received(), 4)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "→ newSession", lines[0])
	assert.Equal(t, `✓ {"browserName":"x"}`, lines[1])
	assert.Equal(t, "→ getTitle", lines[2])
	assert.Equal(t, `✓ "Example"`, lines[3])
	assert.Equal(t, "→ bogus", lines[4])
	assert.Equal(t, "✗ unknown command: unknown command bogus", lines[5])
	assert.Contains(t, lines[6], "invalid command line")
}

func TestUseCase_RunStopsOnContext(t *testing.T) {
	exec, actor := newExecutor(t, func(entity.Payload) string { return memory.Success(1) })
	actor.Hold()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	uc := New(exec, userinteraction.NewConsole(strings.NewReader("getTitle\n"), &bytes.Buffer{}), logger.NewNop())
	result, err := uc.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, result.Executed)
}
