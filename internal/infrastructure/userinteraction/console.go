package userinteraction

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"dom-executor/internal/application/port/output"
	"dom-executor/internal/domain/entity"
)

var _ output.CommandConsolePort = (*Console)(nil)

const maxShownValue = 2000

var ErrInvalidCommand = errors.New("invalid command line")

// Console reads one JSON command per line:
//
//	{"name":"getTitle","sessionId":"abc","parameters":{}}
//
// A bare word such as getTitle is accepted as a command without parameters.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (c *Console) ReadCommand(ctx context.Context) (entity.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Command{}, err
		}

		line, err := c.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return parseCommand(line)
		}
		if err != nil {
			return entity.Command{}, err
		}
	}
}

func parseCommand(line string) (entity.Command, error) {
	if !strings.HasPrefix(line, "{") {
		if strings.ContainsAny(line, " \t") {
			return entity.Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
		}
		return entity.NewCommand(entity.CommandName(line)), nil
	}

	var p entity.Payload
	if err := json.Unmarshal([]byte(line), &p); err != nil {
		return entity.Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	if p.Name == "" {
		return entity.Command{}, fmt.Errorf("%w: missing name", ErrInvalidCommand)
	}

	cmd := entity.NewCommand(p.Name).WithParameters(p.Parameters)
	if p.SessionID != "" {
		cmd = cmd.WithSessionID(p.SessionID)
	}
	return cmd, nil
}

func (c *Console) ShowCommand(ctx context.Context, cmd entity.Command) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(c.out, "→ %s", cmd.Name)
	if cmd.SessionID != "" {
		dim := color.New(color.Faint)
		dim.Fprintf(c.out, " [%s]", cmd.SessionID)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) ShowResponse(ctx context.Context, cmd entity.Command, resp *entity.Response) {
	data, err := json.Marshal(resp.Value)
	if err != nil {
		data = []byte(fmt.Sprint(resp.Value))
	}

	green := color.New(color.FgGreen)
	green.Fprint(c.out, "✓ ")
	fmt.Fprintln(c.out, truncate(string(data), maxShownValue))
}

func (c *Console) ShowError(ctx context.Context, cmd entity.Command, err error) {
	red := color.New(color.FgRed)
	red.Fprint(c.out, "✗ ")
	fmt.Fprintln(c.out, err.Error())
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
