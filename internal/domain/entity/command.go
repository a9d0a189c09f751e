package entity

type CommandName string

const (
	CmdNewSession      CommandName = "newSession"
	CmdDescribeSession CommandName = "getSessionCapabilities"
	CmdQuit            CommandName = "quit"

	CmdGet           CommandName = "get"
	CmdGetTitle      CommandName = "getTitle"
	CmdGetURL        CommandName = "getCurrentUrl"
	CmdGoBack        CommandName = "goBack"
	CmdGoForward     CommandName = "goForward"
	CmdRefresh       CommandName = "refresh"
	CmdGetPageSource CommandName = "getPageSource"

	CmdSwitchToFrame  CommandName = "switchToFrame"
	CmdSwitchToWindow CommandName = "switchToWindow"

	CmdFindElement         CommandName = "findElement"
	CmdFindElements        CommandName = "findElements"
	CmdFindChildElement    CommandName = "findChildElement"
	CmdClickElement        CommandName = "clickElement"
	CmdSendKeysToElement   CommandName = "sendKeysToElement"
	CmdGetElementText      CommandName = "getElementText"
	CmdGetElementAttribute CommandName = "getElementAttribute"
	CmdClearElement        CommandName = "clearElement"

	CmdExecuteScript      CommandName = "executeScript"
	CmdExecuteAsyncScript CommandName = "executeAsyncScript"
	CmdScreenshot         CommandName = "screenshot"
)

func (n CommandName) String() string {
	return string(n)
}

// Parameter keys with special meaning to the encoder.
const (
	ParamSessionID = "sessionId"
	ParamID        = "id"
	ParamElement   = "ELEMENT"
)

// Command is a named automation command. Builders return copies, so a
// Command handed to an executor is never mutated afterwards.
type Command struct {
	Name       CommandName
	SessionID  string
	Parameters map[string]any
}

func NewCommand(name CommandName) Command {
	return Command{Name: name}
}

func (c Command) WithSessionID(id string) Command {
	c.SessionID = id
	return c
}

func (c Command) WithParameter(key string, value any) Command {
	params := copyParams(c.Parameters)
	params[key] = value
	c.Parameters = params
	return c
}

func (c Command) WithParameters(params map[string]any) Command {
	merged := copyParams(c.Parameters)
	for k, v := range params {
		merged[k] = v
	}
	c.Parameters = merged
	return c
}

// Parameter returns a single parameter value.
func (c Command) Parameter(key string) (any, bool) {
	v, ok := c.Parameters[key]
	return v, ok
}

func copyParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	return out
}
