package output

import (
	"context"

	"dom-executor/internal/domain/entity"
)

// CommandConsolePort is the operator-facing side of an interactive session:
// commands come in one at a time and every outcome is shown back.
type CommandConsolePort interface {
	// ReadCommand returns io.EOF once input is exhausted.
	ReadCommand(ctx context.Context) (entity.Command, error)

	ShowCommand(ctx context.Context, cmd entity.Command)
	ShowResponse(ctx context.Context, cmd entity.Command, resp *entity.Response)
	ShowError(ctx context.Context, cmd entity.Command, err error)
}
