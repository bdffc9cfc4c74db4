package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/goquery"
	"github.com/fwojciec/webfetch/htmltomarkdown"
	webhttp "github.com/fwojciec/webfetch/http"
	"github.com/fwojciec/webfetch/pipeline"
	"github.com/fwojciec/webfetch/readability"
	wfslog "github.com/fwojciec/webfetch/slog"
	"github.com/fwojciec/webfetch/trafilatura"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set at build time with -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before flags are parsed.
	// A missing file is ignored. Empty disables loading.
	EnvFile string

	// Transport carries the MCP stream for the serve command.
	// Defaults to stdio.
	Transport mcp.Transport
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webfetch"),
		kong.Description("Fetch web pages as markdown, over MCP or from the command line"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Service:   m.newService(cli, logger),
		Transport: m.Transport,
		Version:   version,
	}
	if deps.Transport == nil {
		deps.Transport = &mcp.StdioTransport{}
	}

	return kongCtx.Run(deps)
}

// newService wires the fetch pipeline from the global flags.
func (m *Main) newService(cli *CLI, logger *slog.Logger) webfetch.FetchService {
	fetchOpts := []webhttp.Option{webhttp.WithTimeout(cli.Timeout)}
	robotsOpts := []webhttp.Option{webhttp.WithTimeout(cli.RobotsTimeout)}
	if cli.RateLimit > 0 {
		// Robots and page requests share one budget per host.
		limiter := webhttp.NewDomainLimiter(cli.RateLimit)
		fetchOpts = append(fetchOpts, webhttp.WithRateLimiter(limiter))
		robotsOpts = append(robotsOpts, webhttp.WithRateLimiter(limiter))
	}

	fetcher := webhttp.NewFetcher(fetchOpts...)
	robots := webhttp.NewRobotsChecker(robotsOpts...)

	var extractor webfetch.Extractor = readability.NewExtractor()
	if cli.Extractor == "trafilatura" {
		extractor = trafilatura.NewExtractor(extractor)
	}

	userAgents := webfetch.NewUserAgents(cli.UserAgent)
	logger.Debug("configured",
		"user_agent_autonomous", userAgents.Autonomous,
		"user_agent_manual", userAgents.Manual,
		"ignore_robots_txt", cli.IgnoreRobotsTxt,
		"extractor", cli.Extractor,
	)

	svc := &pipeline.Service{
		Robots:  wfslog.NewLoggingRobotsChecker(robots, logger),
		Fetcher: wfslog.NewLoggingFetcher(fetcher, logger),
		Simplifier: &pipeline.Simplifier{
			Cleaner:   goquery.NewCleaner(),
			Extractor: wfslog.NewLoggingExtractor(extractor, logger),
			Converter: htmltomarkdown.NewConverter(),
		},
		UserAgents:      userAgents,
		IgnoreRobotsTxt: cli.IgnoreRobotsTxt,
	}
	return wfslog.NewLoggingService(svc, logger)
}
