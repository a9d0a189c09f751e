// Package config assembles the settings of a bridge run from a ConfigPort.
package config

import (
	"time"

	"dom-executor/internal/application/port/output"
	"dom-executor/internal/infrastructure/channel"
	"dom-executor/internal/infrastructure/logger"
	"dom-executor/internal/usecase/executor"
)

const (
	keyBrowserFamily     = "DOMEXEC_BROWSER_FAMILY"
	keyMarkerAttribute   = "DOMEXEC_MARKER_ATTRIBUTE"
	keyCommandAttribute  = "DOMEXEC_COMMAND_ATTRIBUTE"
	keyResponseAttribute = "DOMEXEC_RESPONSE_ATTRIBUTE"
	keyCommandEvent      = "DOMEXEC_COMMAND_EVENT"
	keyResponseEvent     = "DOMEXEC_RESPONSE_EVENT"
	keyPageURL           = "DOMEXEC_PAGE_URL"
	keyHeadless          = "DOMEXEC_HEADLESS"
	keyNoSandbox         = "DOMEXEC_NO_SANDBOX"
	keyPageLoadTimeoutMS = "DOMEXEC_PAGE_LOAD_TIMEOUT_MS"
	keyLogDir            = "DOMEXEC_LOG_DIR"
	keyLogLevel          = "DOMEXEC_LOG_LEVEL"
	keyLogConsole        = "DOMEXEC_LOG_CONSOLE"
)

// The CLI launches Chromium through rod's launcher.
const defaultBrowserFamily = "Chrome"

type Config struct {
	Executor executor.Options
	Names    channel.Names
	Browser  BrowserConfig
	Log      logger.Config
}

type BrowserConfig struct {
	PageURL         string
	Headless        bool
	NoSandbox       bool
	PageLoadTimeout time.Duration
}

func Default() Config {
	names := channel.DefaultNames()
	opts := executor.DefaultOptions()
	opts.BrowserFamily = defaultBrowserFamily
	opts.MarkerAttribute = names.MarkerAttribute

	return Config{
		Executor: opts,
		Names:    names,
		Browser: BrowserConfig{
			PageURL:         "about:blank",
			Headless:        true,
			PageLoadTimeout: 30 * time.Second,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load overlays values found in cfg on top of Default.
func Load(cfg output.ConfigPort) Config {
	c := Default()

	c.Executor.BrowserFamily = cfg.GetWithDefault(keyBrowserFamily, c.Executor.BrowserFamily)
	c.Names.MarkerAttribute = cfg.GetWithDefault(keyMarkerAttribute, c.Names.MarkerAttribute)
	c.Executor.MarkerAttribute = c.Names.MarkerAttribute
	c.Names.CommandAttribute = cfg.GetWithDefault(keyCommandAttribute, c.Names.CommandAttribute)
	c.Names.ResponseAttribute = cfg.GetWithDefault(keyResponseAttribute, c.Names.ResponseAttribute)
	c.Names.CommandEvent = cfg.GetWithDefault(keyCommandEvent, c.Names.CommandEvent)
	c.Names.ResponseEvent = cfg.GetWithDefault(keyResponseEvent, c.Names.ResponseEvent)

	c.Browser.PageURL = cfg.GetWithDefault(keyPageURL, c.Browser.PageURL)
	c.Browser.Headless = cfg.GetBool(keyHeadless, c.Browser.Headless)
	c.Browser.NoSandbox = cfg.GetBool(keyNoSandbox, c.Browser.NoSandbox)
	if ms := cfg.GetInt(keyPageLoadTimeoutMS, 0); ms > 0 {
		c.Browser.PageLoadTimeout = time.Duration(ms) * time.Millisecond
	}

	c.Log.Dir = cfg.GetWithDefault(keyLogDir, c.Log.Dir)
	c.Log.Level = cfg.GetWithDefault(keyLogLevel, c.Log.Level)
	c.Log.Console = cfg.GetBool(keyLogConsole, c.Log.Console)

	return c
}
