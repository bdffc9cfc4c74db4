package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webfetch"
	webmcp "github.com/fwojciec/webfetch/mcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Service   webfetch.FetchService
	Transport mcp.Transport
	Version   string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	UserAgent       string        `name:"user-agent" env:"WEBFETCH_USER_AGENT" help:"Custom User-Agent for all requests"`
	IgnoreRobotsTxt bool          `name:"ignore-robots-txt" env:"WEBFETCH_IGNORE_ROBOTS_TXT" help:"Ignore robots.txt restrictions"`
	LogLevel        string        `name:"log-level" env:"WEBFETCH_LOG_LEVEL" enum:"debug,info,warn,error" default:"info" help:"Log level (debug, info, warn, error)"`
	Timeout         time.Duration `default:"30s" help:"Timeout for page requests"`
	RobotsTimeout   time.Duration `name:"robots-timeout" default:"30s" help:"Timeout for robots.txt requests"`
	Extractor       string        `enum:"readability,trafilatura" default:"readability" help:"Main content extractor (readability, trafilatura)"`
	RateLimit       float64       `name:"rate-limit" default:"0" help:"Requests per second per host, 0 disables"`

	Serve ServeCmd `cmd:"" default:"1" help:"Run the MCP server over stdio (default)"`
	Fetch FetchCmd `cmd:"" help:"Fetch a URL and print its contents"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// Run serves MCP requests until the client disconnects or ctx is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := webmcp.NewServer(deps.Service, deps.Version, deps.Logger)
	deps.Logger.Info("server starting", "name", webmcp.ServerName, "version", deps.Version)

	err := server.Run(deps.Ctx, deps.Transport)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL        string `arg:"" help:"URL to fetch"`
	MaxLength  int    `name:"max-length" default:"5000" help:"Maximum number of characters to return"`
	StartIndex int    `name:"start-index" default:"0" help:"Character index to start from"`
	Raw        bool   `help:"Return raw content without simplification"`
	Manual     bool   `help:"Fetch as a user request: no robots.txt check and no windowing"`
}

// Run fetches the URL and prints the result.
func (c *FetchCmd) Run(deps *Dependencies) error {
	var (
		result *webfetch.FetchResult
		err    error
	)
	if c.Manual {
		result, err = deps.Service.FetchManual(deps.Ctx, c.URL)
	} else {
		result, err = deps.Service.Fetch(deps.Ctx, &webfetch.FetchRequest{
			URL:        c.URL,
			MaxLength:  c.MaxLength,
			StartIndex: c.StartIndex,
			Raw:        c.Raw,
		})
	}
	if err != nil {
		return errors.New(webfetch.ErrorMessage(err))
	}

	fmt.Fprintln(deps.Stdout, result.Text())
	return nil
}
