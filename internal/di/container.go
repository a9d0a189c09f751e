package di

import (
	"context"
	"fmt"
	"io"

	"dom-executor/internal/application/port/output"
	"dom-executor/internal/infrastructure/browser/rod"
	"dom-executor/internal/infrastructure/channel/page"
	"dom-executor/internal/infrastructure/config"
	"dom-executor/internal/infrastructure/logger"
	"dom-executor/internal/infrastructure/protocol"
	"dom-executor/internal/infrastructure/userinteraction"
	"dom-executor/internal/usecase/executor"
	"dom-executor/internal/usecase/session"
)

type Container struct {
	Browser  *rod.BrowserAdapter
	Executor *executor.Executor
	Logger   output.LoggerPort
	Session  *session.UseCase
}

type Config struct {
	config.Config
	BrowserBin string
	In         io.Reader
	Out        io.Writer
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Bin = cfg.BrowserBin
	browserCfg.Headless = cfg.Browser.Headless
	browserCfg.NoSandbox = cfg.Browser.NoSandbox
	browserCfg.Timeout = cfg.Browser.PageLoadTimeout

	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}

	if err := browser.Open(ctx, cfg.Browser.PageURL); err != nil {
		browser.Close()
		log.Close()
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Browser.PageURL, err)
	}

	ch := page.New(browser.Page(), cfg.Names)
	exec, err := executor.New(ctx, ch, protocol.NewChecker(), log, cfg.Executor)
	if err != nil {
		browser.Close()
		log.Close()
		return nil, fmt.Errorf("failed to attach executor: %w", err)
	}

	console := userinteraction.NewConsole(cfg.In, cfg.Out)

	return &Container{
		Browser:  browser,
		Executor: exec,
		Logger:   log,
		Session:  session.New(exec, console, log),
	}, nil
}

func (c *Container) Close() {
	if c.Executor != nil {
		if err := c.Executor.Close(); err != nil {
			c.Logger.Warn("Failed to detach executor", "error", err)
		}
	}
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}
