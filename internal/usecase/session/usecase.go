package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dom-executor/internal/application/port/input"
	"dom-executor/internal/application/port/output"
)

type Result struct {
	Executed int
	Failed   int
}

// UseCase feeds commands from a console to an executor one at a time,
// waiting for each response before reading the next command.
type UseCase struct {
	executor input.CommandExecutor
	console  output.CommandConsolePort
	logger   output.LoggerPort
}

func New(executor input.CommandExecutor, console output.CommandConsolePort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		executor: executor,
		console:  console,
		logger:   logger,
	}
}

// Run returns when the console is exhausted or ctx ends. Command failures
// are shown and counted, not returned.
func (uc *UseCase) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	for {
		cmd, err := uc.console.ReadCommand(ctx)
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			uc.logger.Warn("Skipping unreadable command", "error", err)
			uc.console.ShowError(ctx, cmd, err)
			result.Failed++
			continue
		}

		uc.console.ShowCommand(ctx, cmd)
		future, err := uc.executor.Execute(cmd)
		if err != nil {
			return result, fmt.Errorf("execute %s: %w", cmd.Name, err)
		}

		resp, err := future.Await(ctx)
		result.Executed++
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			uc.logger.Info("Command failed", "command", cmd.Name, "error", err)
			uc.console.ShowError(ctx, cmd, err)
			result.Failed++
			continue
		}

		uc.logger.Debug("Command succeeded", "command", cmd.Name)
		uc.console.ShowResponse(ctx, cmd, resp)
	}
}
